package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/utils/logging"
)

// Ingest runs a full fetch-and-reconcile cycle for the given source.
// The sweep of stale records only runs after a complete fetch, so an
// upstream outage can never archive live members.
func (uc *UseCases) Ingest(ctx context.Context, kind types.SourceKind) (*model.RunSummary, error) {
	entry, ok := uc.sources[kind]
	if !ok {
		return nil, goerr.New("source is not registered",
			goerr.V("source", kind),
			goerr.T(model.ErrTagConfig),
		)
	}

	traceID := types.NewTraceID()
	logger := logging.From(ctx).With("trace_id", traceID, "source", kind)
	ctx = logging.With(ctx, logger)

	runStart := uc.now()
	logger.Info("starting ingestion run")

	result, err := entry.source.Fetch(ctx)
	if err != nil {
		logger.Error("ingestion run aborted", "error", err)
		uc.alert(ctx, fmt.Sprintf("ingestion from %s failed: %v", kind, err))
		return nil, goerr.Wrap(err, "failed to fetch from source", goerr.V("source", kind))
	}

	summary := &model.RunSummary{
		TraceID: traceID,
		Source:  kind,
		Skipped: result.Skipped,
	}

	for _, member := range result.Members {
		created, fetched, err := uc.reconcile(ctx, member, runStart)
		if err != nil {
			logger.Error("failed to reconcile member", "error", err, "external_id", member.ExternalID)
			summary.Skipped++
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
		if fetched {
			summary.AssetsFetched++
		}
	}

	if len(result.Averages) > 0 && uc.scores != nil {
		if err := uc.scores.Put(ctx, result.Averages, entry.config.ScoreTTL); err != nil {
			logger.Error("failed to cache location averages", "error", err)
		}
	}

	archived, err := uc.sweepArchived(ctx, runStart, entry.config.GraceWindow)
	if err != nil {
		logger.Error("failed to sweep stale members", "error", err)
	}
	summary.Archived = archived

	summary.Duration = uc.now().Sub(runStart)
	logger.Info("ingestion run completed", "summary", summary)

	if uc.production && uc.heartbeat != nil {
		if err := uc.heartbeat.Ping(ctx); err != nil {
			logger.Warn("failed to send heartbeat", "error", err)
		}
	}

	return summary, nil
}

func (uc *UseCases) alert(ctx context.Context, message string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Notify(ctx, message); err != nil {
		logging.From(ctx).Warn("failed to send notification", "error", err)
	}
}
