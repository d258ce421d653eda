package usecase

import (
	"context"
	"time"

	"github.com/reef-world/finsync/pkg/domain/interfaces"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/service/notify"
)

// Source is what the ingestion pipeline needs from an upstream API
type Source interface {
	Kind() types.SourceKind
	Fetch(ctx context.Context) (*model.FetchResult, error)
}

// AssetCache resolves a remote logo URL to a locally cached filename
type AssetCache interface {
	Ensure(ctx context.Context, remoteURL string) (filename string, fetched bool, err error)
	DefaultFilename() string
}

// Heartbeat signals an external monitor that a run completed
type Heartbeat interface {
	Ping(ctx context.Context) error
}

// SourceConfig carries the per-source reconciliation tuning. The grace
// window must exceed the source's run interval so one missed poll never
// archives the whole catalog.
type SourceConfig struct {
	GraceWindow time.Duration
	ScoreTTL    time.Duration
}

type sourceEntry struct {
	source Source
	config SourceConfig
}

type UseCases struct {
	repo       interfaces.Repository
	scores     interfaces.ScoreCache
	assets     AssetCache
	notifier   notify.Service
	heartbeat  Heartbeat
	sources    map[types.SourceKind]sourceEntry
	production bool
	now        func() time.Time
}

type Option func(*UseCases)

// WithSource registers an upstream source with its reconciliation tuning
func WithSource(src Source, cfg SourceConfig) Option {
	return func(uc *UseCases) {
		uc.sources[src.Kind()] = sourceEntry{source: src, config: cfg}
	}
}

func WithScoreCache(scores interfaces.ScoreCache) Option {
	return func(uc *UseCases) {
		uc.scores = scores
	}
}

func WithAssets(assets AssetCache) Option {
	return func(uc *UseCases) {
		uc.assets = assets
	}
}

func WithNotifier(notifier notify.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = notifier
	}
}

func WithHeartbeat(heartbeat Heartbeat) Option {
	return func(uc *UseCases) {
		uc.heartbeat = heartbeat
	}
}

// WithProduction enables the post-run heartbeat ping
func WithProduction(production bool) Option {
	return func(uc *UseCases) {
		uc.production = production
	}
}

// WithClock injects a clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		sources: make(map[types.SourceKind]sourceEntry),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Sources returns the kinds of all registered upstream sources
func (uc *UseCases) Sources() []types.SourceKind {
	kinds := make([]types.SourceKind, 0, len(uc.sources))
	for kind := range uc.sources {
		kinds = append(kinds, kind)
	}
	return kinds
}
