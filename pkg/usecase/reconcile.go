package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/utils/logging"
)

// reconcile upserts one fetched member. The external ID decides between
// create and update, and an existing record keeps its creation time. A
// failed logo download is non-fatal and falls back to the default file.
func (uc *UseCases) reconcile(ctx context.Context, member *model.Member, seenAt time.Time) (created bool, assetFetched bool, err error) {
	existing, err := uc.repo.Member().Get(ctx, member.ExternalID)
	if err != nil && !errors.Is(err, model.ErrMemberNotFound) {
		return false, false, goerr.Wrap(err, "failed to look up member",
			goerr.V("external_id", member.ExternalID),
		)
	}

	if existing != nil {
		member.CreatedAt = existing.CreatedAt
	}
	member.Refresh(seenAt)

	if uc.assets != nil {
		filename, fetched, err := uc.assets.Ensure(ctx, member.LogoSourceURL)
		member.LogoLocalFilename = filename
		assetFetched = fetched
		if err != nil {
			logging.From(ctx).Warn("failed to cache member logo",
				"error", err,
				"external_id", member.ExternalID,
			)
		}
	}

	if err := uc.repo.Member().Put(ctx, member); err != nil {
		return false, false, goerr.Wrap(err, "failed to store member",
			goerr.V("external_id", member.ExternalID),
		)
	}

	return existing == nil, assetFetched, nil
}

// sweepArchived archives records not seen since the grace window before
// this run started. Members touched in the current run carry the run's
// own timestamp and are never candidates.
func (uc *UseCases) sweepArchived(ctx context.Context, runStart time.Time, grace time.Duration) (int, error) {
	members, err := uc.repo.Member().List(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list members for sweep")
	}

	cutoff := runStart.Add(-grace)
	archived := 0
	for _, member := range members {
		if member.Archived || !member.LastSeenAt.Before(cutoff) {
			continue
		}
		if err := uc.repo.Member().Archive(ctx, member.ExternalID); err != nil {
			logging.From(ctx).Error("failed to archive stale member",
				"error", err,
				"external_id", member.ExternalID,
			)
			continue
		}
		archived++
	}

	return archived, nil
}
