package hub

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
)

// placeholderEmail is the sentinel address the Hub sets on records migrated
// without a real contact; it normalizes to absent.
const placeholderEmail = "hub+please-change-me@greenfins.net"

// Normalize maps one Hub operation onto the canonical member shape. It is
// pure and never fails on malformed optional fields; only a missing ID or
// name rejects the record.
func Normalize(op Operation) (*model.Member, error) {
	if op.ID == "" {
		return nil, goerr.New("operation has no id", goerr.T(model.ErrTagRecord), goerr.V("name", op.Name))
	}
	if op.Name == "" {
		return nil, goerr.New("operation has no name", goerr.T(model.ErrTagRecord), goerr.V("id", op.ID))
	}

	email := op.Email
	if email == placeholderEmail {
		email = ""
	}

	return &model.Member{
		ExternalID:             types.MemberID(op.ID),
		Name:                   op.Name,
		Industry:               op.Industry,
		MembershipType:         types.ParseMembershipType(op.MembershipType),
		MembershipLevel:        types.LevelFromLabel(op.MembershipLevel),
		MembershipStatus:       types.ParseMembershipStatus(op.MembershipStatus),
		LatestScore:            op.LatestScore,
		ExternalEcoRecognition: op.ExternalEcoRecognition,
		Location: model.Location{
			Country: op.Country.Name,
			Region:  op.Region.Name,
			Name:    op.Location.Name,
			Address: op.Address,
			Lat:     op.Lat,
			Lng:     op.Lng,
		},
		Contact: model.Contact{
			Website: op.Website,
			Email:   email,
		},
		LogoSourceURL: op.LogoURL,
	}, nil
}
