package portal_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/service/portal"
)

func TestNormalize(t *testing.T) {
	raw := portal.Member{
		ID:          42,
		Name:        "Reef Trek",
		Industry:    "Diving",
		Status:      "active",
		LogoURL:     "https://portal.example.com/logos/reef-trek.jpg",
		Website:     "https://reeftrek.example.com",
		Email:       "hello@reeftrek.example.com",
		Telephone:   "+66 1234 5678",
		Address1:    "2 Pier Rd",
		Address2:    "Sairee",
		RegionName:  "Gulf of Thailand",
		CountryName: "Thailand",
		Lat:         "10.09",
		Lng:         "99.84",
	}

	member, err := portal.Normalize(raw, "Koh Tao")
	gt.NoError(t, err)

	gt.Value(t, member.ExternalID).Equal(types.MemberID("42"))
	gt.Value(t, member.MembershipType).Equal(types.MembershipTypeCertified)
	gt.Value(t, member.MembershipLevel).Equal(types.MembershipLevelNone)
	gt.Value(t, member.MembershipStatus).Equal(types.MembershipStatusActive)
	gt.Value(t, member.LatestScore).Nil()
	gt.Value(t, member.Location.Name).Equal("Koh Tao")
	gt.Value(t, member.Location.Lat).Equal(10.09)
	gt.Value(t, member.Location.Lng).Equal(99.84)
	gt.Value(t, member.Contact.Phone).Equal("+66 1234 5678")
}

func TestNormalize_RequiredFields(t *testing.T) {
	_, err := portal.Normalize(portal.Member{Name: "No ID"}, "Koh Tao")
	gt.Error(t, err)

	_, err = portal.Normalize(portal.Member{ID: 1}, "Koh Tao")
	gt.Error(t, err)
}

func TestNormalize_SuspendedStatus(t *testing.T) {
	member, err := portal.Normalize(portal.Member{
		ID:     7,
		Name:   "Reef Trek",
		Status: "suspended",
	}, "Koh Tao")
	gt.NoError(t, err)
	gt.Value(t, member.MembershipStatus).Equal(types.MembershipStatusRestricted)
}

func TestNormalize_GarbageCoordinates(t *testing.T) {
	member, err := portal.Normalize(portal.Member{
		ID:   7,
		Name: "Reef Trek",
		Lat:  "N/A",
		Lng:  "",
	}, "Koh Tao")
	gt.NoError(t, err)
	gt.Value(t, member.Location.Lat).Equal(0.0)
	gt.Value(t, member.Location.Lng).Equal(0.0)
}
