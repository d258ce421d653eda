package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
)

// Verify looks up a member for the public verification endpoint. Only
// current certified and digital members resolve; archived records and
// lapsed memberships report as not found rather than leaking state.
func (uc *UseCases) Verify(ctx context.Context, id types.MemberID) (*model.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	member, err := uc.repo.Member().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if member.Archived {
		return nil, goerr.Wrap(model.ErrMemberNotFound, "member is archived",
			goerr.V("external_id", id),
		)
	}

	switch member.MembershipType {
	case types.MembershipTypeCertified, types.MembershipTypeDigital:
		return member, nil
	default:
		return nil, goerr.Wrap(model.ErrMemberNotFound, "membership is not verifiable",
			goerr.V("external_id", id),
		)
	}
}

// ScoreAverage returns the cached conservation score average for a
// dive location.
func (uc *UseCases) ScoreAverage(ctx context.Context, country, location string) (float64, error) {
	if uc.scores == nil {
		return 0, goerr.Wrap(model.ErrScoreNotFound, "score cache is not configured")
	}
	return uc.scores.Get(ctx, country, location)
}
