package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/repository/memory"
	"github.com/reef-world/finsync/pkg/usecase"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	gt.NoError(t, repo.Member().Put(ctx, &model.Member{
		ExternalID:       "op-1",
		Name:             "Blue Lagoon Divers",
		MembershipType:   types.MembershipTypeCertified,
		MembershipStatus: types.MembershipStatusActive,
	}))
	gt.NoError(t, repo.Member().Put(ctx, &model.Member{
		ExternalID:       "op-2",
		Name:             "Acme Dive Shop",
		MembershipType:   types.MembershipTypeDigital,
		MembershipStatus: types.MembershipStatusActive,
	}))
	gt.NoError(t, repo.Member().Put(ctx, &model.Member{
		ExternalID:     "op-3",
		Name:           "Lapsed Diving",
		MembershipType: types.MembershipTypeNone,
	}))

	member, err := uc.Verify(ctx, "op-1")
	gt.NoError(t, err)
	gt.Value(t, member.Name).Equal("Blue Lagoon Divers")

	member, err = uc.Verify(ctx, "op-2")
	gt.NoError(t, err)
	gt.Value(t, member.MembershipType).Equal(types.MembershipTypeDigital)

	// A lapsed membership verifies as not found, not as a distinct state
	_, err = uc.Verify(ctx, "op-3")
	gt.Error(t, err).Is(model.ErrMemberNotFound)

	_, err = uc.Verify(ctx, "missing")
	gt.Error(t, err).Is(model.ErrMemberNotFound)

	_, err = uc.Verify(ctx, "")
	gt.Error(t, err)
}

func TestVerify_ArchivedHidden(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	gt.NoError(t, repo.Member().Put(ctx, &model.Member{
		ExternalID:     "op-1",
		Name:           "Blue Lagoon Divers",
		MembershipType: types.MembershipTypeCertified,
	}))
	gt.NoError(t, repo.Member().Archive(ctx, "op-1"))

	_, err := uc.Verify(ctx, "op-1")
	gt.Error(t, err).Is(model.ErrMemberNotFound)
}
