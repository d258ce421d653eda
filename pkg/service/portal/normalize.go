package portal

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
)

// Normalize maps one Portal member onto the canonical member shape.
// locationName comes from the enclosing listing, since the member payload
// itself only carries region and country names.
//
// The Portal predates tier levels: everyone it reports is a certified
// member with no level. It is pure and never fails on malformed optional
// fields; only a missing ID or name rejects the record.
func Normalize(raw Member, locationName string) (*model.Member, error) {
	if raw.ID == 0 {
		return nil, goerr.New("portal member has no id", goerr.T(model.ErrTagRecord), goerr.V("name", raw.Name))
	}
	if raw.Name == "" {
		return nil, goerr.New("portal member has no name", goerr.T(model.ErrTagRecord), goerr.V("id", raw.ID))
	}

	return &model.Member{
		ExternalID:       types.MemberID(strconv.FormatInt(raw.ID, 10)),
		Name:             raw.Name,
		Industry:         raw.Industry,
		MembershipType:   types.MembershipTypeCertified,
		MembershipLevel:  types.MembershipLevelNone,
		MembershipStatus: types.ParseMembershipStatus(raw.Status),
		Location: model.Location{
			Country:  raw.CountryName,
			Region:   raw.RegionName,
			Name:     locationName,
			Address:  raw.Address1,
			Address2: raw.Address2,
			Lat:      parseCoord(raw.Lat),
			Lng:      parseCoord(raw.Lng),
		},
		Contact: model.Contact{
			Website: raw.Website,
			Email:   raw.Email,
			Phone:   raw.Telephone,
		},
		LogoSourceURL: raw.LogoURL,
	}, nil
}

// parseCoord tolerates the Portal's text coordinates; garbage becomes zero
func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
