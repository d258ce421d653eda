package hub_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/service/hub"
)

func TestNormalize(t *testing.T) {
	score := 14.5
	op := hub.Operation{
		ID:                     "op-1",
		Name:                   "Blue Lagoon Divers",
		Industry:               "Diving",
		MembershipType:         "CERTIFIED",
		MembershipStatus:       "ACTIVE",
		MembershipLevel:        "Certified Gold Member",
		LatestScore:            &score,
		ExternalEcoRecognition: true,
		Address:                "1 Beach Rd",
		Location:               hub.NamedRef{Name: "Koh Tao"},
		Region:                 hub.NamedRef{Name: "Gulf of Thailand"},
		Country:                hub.NamedRef{Name: "Thailand"},
		Lat:                    10.09,
		Lng:                    99.84,
		Website:                "https://bluelagoon.example.com",
		Email:                  "info@bluelagoon.example.com",
		LogoURL:                "https://cdn.example.com/logos/blue-lagoon.png",
	}

	member, err := hub.Normalize(op)
	gt.NoError(t, err)

	gt.Value(t, member.ExternalID).Equal(types.MemberID("op-1"))
	gt.Value(t, member.MembershipType).Equal(types.MembershipTypeCertified)
	gt.Value(t, member.MembershipLevel).Equal(types.MembershipLevelGold)
	gt.Value(t, member.MembershipStatus).Equal(types.MembershipStatusActive)
	gt.Value(t, *member.LatestScore).Equal(14.5)
	gt.Bool(t, member.ExternalEcoRecognition).True()
	gt.Value(t, member.Location.Country).Equal("Thailand")
	gt.Value(t, member.Location.Name).Equal("Koh Tao")
	gt.Value(t, member.Contact.Email).Equal("info@bluelagoon.example.com")
	gt.Value(t, member.LogoSourceURL).Equal("https://cdn.example.com/logos/blue-lagoon.png")
}

func TestNormalize_RequiredFields(t *testing.T) {
	_, err := hub.Normalize(hub.Operation{Name: "No ID"})
	gt.Error(t, err)

	_, err = hub.Normalize(hub.Operation{ID: "op-1"})
	gt.Error(t, err)
}

func TestNormalize_PlaceholderEmail(t *testing.T) {
	member, err := hub.Normalize(hub.Operation{
		ID:    "op-1",
		Name:  "Blue Lagoon Divers",
		Email: "hub+please-change-me@greenfins.net",
	})
	gt.NoError(t, err)
	gt.Value(t, member.Contact.Email).Equal("")
}

func TestNormalize_AbsentScoreStaysAbsent(t *testing.T) {
	member, err := hub.Normalize(hub.Operation{ID: "op-1", Name: "Blue Lagoon Divers"})
	gt.NoError(t, err)
	gt.Value(t, member.LatestScore).Nil()
}

func TestNormalize_UnknownLabels(t *testing.T) {
	member, err := hub.Normalize(hub.Operation{
		ID:               "op-1",
		Name:             "Blue Lagoon Divers",
		MembershipType:   "platinum",
		MembershipStatus: "on-hold",
		MembershipLevel:  "Certified Platinum Member",
	})
	gt.NoError(t, err)
	gt.Value(t, member.MembershipType).Equal(types.MembershipTypeNone)
	gt.Value(t, member.MembershipStatus).Equal(types.MembershipStatusInactive)
	gt.Value(t, member.MembershipLevel).Equal(types.MembershipLevelNone)
}
