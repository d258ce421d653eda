package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/repository/memory"
	"github.com/reef-world/finsync/pkg/usecase"
)

type fakeSource struct {
	kind   types.SourceKind
	result *model.FetchResult
	err    error
}

func (s *fakeSource) Kind() types.SourceKind { return s.kind }

func (s *fakeSource) Fetch(ctx context.Context) (*model.FetchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	// Hand out fresh copies: the pipeline mutates what it receives
	result := &model.FetchResult{
		Averages: s.result.Averages,
		Skipped:  s.result.Skipped,
	}
	for _, m := range s.result.Members {
		copied := *m
		result.Members = append(result.Members, &copied)
	}
	return result, nil
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(ctx context.Context, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

func activeMember(id, name string) *model.Member {
	return &model.Member{
		ExternalID:       types.MemberID(id),
		Name:             name,
		MembershipType:   types.MembershipTypeCertified,
		MembershipLevel:  types.MembershipLevelBronze,
		MembershipStatus: types.MembershipStatusActive,
	}
}

func TestIngest_CreateThenUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{
				activeMember("op-1", "Blue Lagoon Divers"),
				activeMember("op-2", "Acme Dive Shop"),
			},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
	)

	summary, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Created).Equal(2)
	gt.Value(t, summary.Updated).Equal(0)
	gt.Value(t, summary.Archived).Equal(0)

	// The same upstream state again: pure updates, no growth
	summary, err = uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Created).Equal(0)
	gt.Value(t, summary.Updated).Equal(2)

	members, err := repo.Member().List(ctx)
	gt.NoError(t, err)
	gt.Array(t, members).Length(2)
}

func TestIngest_DerivedFieldsStored(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	inactive := activeMember("op-2", "Acme Dive Shop")
	inactive.MembershipStatus = types.MembershipStatusInactive

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{
				activeMember("op-1", "Blue Lagoon Divers"),
				inactive,
			},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
	)

	_, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)

	published, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)
	gt.Value(t, published.PublishState).Equal(types.PublishStatePublished)
	gt.Array(t, published.CategoryTags).Length(1)
	gt.Value(t, published.CategoryTags[0]).Equal(types.CategoryTag("certified-bronze-member"))

	pending, err := repo.Member().Get(ctx, "op-2")
	gt.NoError(t, err)
	gt.Value(t, pending.PublishState).Equal(types.PublishStatePending)
	gt.Array(t, pending.CategoryTags).Length(0)
}

func TestIngest_UnregisteredSource(t *testing.T) {
	uc := usecase.New(memory.New())

	_, err := uc.Ingest(context.Background(), types.SourceHub)
	gt.Error(t, err)
	gt.Bool(t, goerr.HasTag(err, model.ErrTagConfig)).True()
}

// A failed fetch aborts the run before the sweep: existing records must
// keep their state even when the upstream is down for a long time.
func TestIngest_FetchFailureSkipsSweep(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	healthy := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{activeMember("op-1", "Blue Lagoon Divers")},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(healthy, usecase.SourceConfig{GraceWindow: time.Hour}),
		usecase.WithClock(clock),
	)

	_, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)

	// The upstream breaks and stays broken far past the grace window
	healthy.err = goerr.New("connection reset", goerr.T(model.ErrTagNetwork))
	now = now.Add(48 * time.Hour)

	_, err = uc.Ingest(ctx, types.SourceHub)
	gt.Error(t, err)

	got, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)
	gt.Bool(t, got.Archived).False()
}

func TestIngest_FetchFailureNotifies(t *testing.T) {
	ctx := context.Background()

	notifier := &fakeNotifier{}
	broken := &fakeSource{
		kind: types.SourceHub,
		err:  goerr.New("connection reset", goerr.T(model.ErrTagNetwork)),
	}

	uc := usecase.New(memory.New(),
		usecase.WithSource(broken, usecase.SourceConfig{GraceWindow: time.Hour}),
		usecase.WithNotifier(notifier),
	)

	_, err := uc.Ingest(ctx, types.SourceHub)
	gt.Error(t, err)
	gt.Array(t, notifier.messages).Length(1)
}

func TestIngest_SweepGraceWindow(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{
				activeMember("op-1", "Blue Lagoon Divers"),
				activeMember("op-2", "Acme Dive Shop"),
			},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
		usecase.WithClock(clock),
	)

	_, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)

	// op-2 disappears upstream
	source.result.Members = source.result.Members[:1]

	// Just inside the grace window: still kept
	now = now.Add(time.Hour - time.Second)
	summary, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Archived).Equal(0)

	kept, err := repo.Member().Get(ctx, "op-2")
	gt.NoError(t, err)
	gt.Bool(t, kept.Archived).False()

	// Just past the grace window: archived
	now = now.Add(2 * time.Second)
	summary, err = uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Archived).Equal(1)

	archived, err := repo.Member().Get(ctx, "op-2")
	gt.NoError(t, err)
	gt.Bool(t, archived.Archived).True()

	// Members present in the run are never sweep candidates
	present, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)
	gt.Bool(t, present.Archived).False()
}

func TestIngest_ReappearanceUnarchives(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{activeMember("op-1", "Blue Lagoon Divers")},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
		usecase.WithClock(clock),
	)

	_, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	created, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)

	source.result.Members = nil
	now = now.Add(2 * time.Hour)
	summary, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Archived).Equal(1)

	source.result.Members = []*model.Member{activeMember("op-1", "Blue Lagoon Divers")}
	now = now.Add(time.Hour)
	summary, err = uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Updated).Equal(1)

	got, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)
	gt.Bool(t, got.Archived).False()
	gt.Value(t, got.CreatedAt).Equal(created.CreatedAt)
}

func TestIngest_StoresLocationAverages(t *testing.T) {
	ctx := context.Background()
	scores := memory.NewScoreCache()

	source := &fakeSource{
		kind: types.SourcePortal,
		result: &model.FetchResult{
			Members: []*model.Member{activeMember("1001", "Reef Trek")},
			Averages: []model.LocationAverage{
				{Country: "Thailand", Location: "Koh Tao", Average: 16.2},
			},
		},
	}

	uc := usecase.New(memory.New(),
		usecase.WithSource(source, usecase.SourceConfig{
			GraceWindow: 24 * time.Hour,
			ScoreTTL:    672 * time.Hour,
		}),
		usecase.WithScoreCache(scores),
	)

	_, err := uc.Ingest(ctx, types.SourcePortal)
	gt.NoError(t, err)

	avg, err := uc.ScoreAverage(ctx, "Thailand", "Koh Tao")
	gt.NoError(t, err)
	gt.Value(t, avg).Equal(16.2)

	_, err = uc.ScoreAverage(ctx, "Thailand", "Koh Samui")
	gt.Error(t, err).Is(model.ErrScoreNotFound)
}

func TestIngest_SkippedCountPropagates(t *testing.T) {
	ctx := context.Background()

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{activeMember("op-1", "Blue Lagoon Divers")},
			Skipped: 3,
		},
	}

	uc := usecase.New(memory.New(),
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
	)

	summary, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Skipped).Equal(3)
	gt.Value(t, summary.Created).Equal(1)
}
