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

type stubAssets struct {
	fetched map[string]bool
	fail    bool
}

func (a *stubAssets) Ensure(ctx context.Context, remoteURL string) (string, bool, error) {
	if a.fail {
		return a.DefaultFilename(), false, goerr.New("download failed", goerr.T(model.ErrTagAsset))
	}
	if remoteURL == "" {
		return a.DefaultFilename(), false, goerr.New("no usable logo URL", goerr.T(model.ErrTagAsset))
	}
	first := !a.fetched[remoteURL]
	a.fetched[remoteURL] = true
	return "logo.png", first, nil
}

func (a *stubAssets) DefaultFilename() string { return "member-default.png" }

func TestIngest_CachesLogos(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	assets := &stubAssets{fetched: map[string]bool{}}

	withLogo := activeMember("op-1", "Blue Lagoon Divers")
	withLogo.LogoSourceURL = "https://cdn.example.com/logos/blue-lagoon.png"

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{withLogo},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
		usecase.WithAssets(assets),
	)

	summary, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.AssetsFetched).Equal(1)

	got, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)
	gt.Value(t, got.LogoLocalFilename).Equal("logo.png")

	// The file is already cached on the next run
	summary, err = uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.AssetsFetched).Equal(0)
}

// A failed logo download keeps the member with the fallback image
func TestIngest_LogoFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	assets := &stubAssets{fetched: map[string]bool{}, fail: true}

	withLogo := activeMember("op-1", "Blue Lagoon Divers")
	withLogo.LogoSourceURL = "https://cdn.example.com/logos/blue-lagoon.png"

	source := &fakeSource{
		kind: types.SourceHub,
		result: &model.FetchResult{
			Members: []*model.Member{withLogo},
		},
	}

	uc := usecase.New(repo,
		usecase.WithSource(source, usecase.SourceConfig{GraceWindow: time.Hour}),
		usecase.WithAssets(assets),
	)

	summary, err := uc.Ingest(ctx, types.SourceHub)
	gt.NoError(t, err)
	gt.Value(t, summary.Created).Equal(1)
	gt.Value(t, summary.AssetsFetched).Equal(0)

	got, err := repo.Member().Get(ctx, "op-1")
	gt.NoError(t, err)
	gt.Value(t, got.LogoLocalFilename).Equal("member-default.png")
}
