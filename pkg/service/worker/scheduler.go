package worker

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/usecase"
	"github.com/reef-world/finsync/pkg/utils/logging"
	"github.com/robfig/cron/v3"
)

// Scheduler drives the periodic ingestion runs. Each source gets its
// own cron entry so schedules can differ per upstream.
type Scheduler struct {
	cron       *cron.Cron
	uc         *usecase.UseCases
	registered []types.SourceKind
}

func NewScheduler(uc *usecase.UseCases) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		uc:   uc,
	}
}

// Register adds a recurring ingestion job for one source. The schedule
// uses cron syntax, including descriptors like "@every 1h".
func (s *Scheduler) Register(ctx context.Context, kind types.SourceKind, spec string) error {
	job := func() {
		if _, err := s.uc.Ingest(ctx, kind); err != nil {
			logging.From(ctx).Error("scheduled ingestion failed",
				"error", err,
				"source", kind,
			)
		}
	}

	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return goerr.Wrap(err, "invalid ingestion schedule",
			goerr.V("source", kind),
			goerr.V("schedule", spec),
			goerr.T(model.ErrTagConfig),
		)
	}

	s.registered = append(s.registered, kind)
	return nil
}

// Start kicks off the cron loop and runs each registered job once
// immediately so a fresh deployment does not wait a full interval for
// its first sync.
func (s *Scheduler) Start(ctx context.Context) {
	for _, kind := range s.registered {
		kind := kind
		go func() {
			if _, err := s.uc.Ingest(ctx, kind); err != nil {
				logging.From(ctx).Error("initial ingestion failed",
					"error", err,
					"source", kind,
				)
			}
		}()
	}

	s.cron.Start()
	logging.From(ctx).Info("ingestion scheduler started", "sources", s.registered)
}

// Stop halts the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	logging.From(ctx).Info("ingestion scheduler stopped")
}
