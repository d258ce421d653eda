package model

import (
	"time"

	"github.com/reef-world/finsync/pkg/domain/types"
)

// Member is the canonical record reconciled from the upstream APIs.
// ExternalID is the upstream key; everything else is overwritten on every
// successful reconciliation pass.
type Member struct {
	ExternalID types.MemberID
	Name       string
	Industry   string

	MembershipType   types.MembershipType
	MembershipLevel  types.MembershipLevel
	MembershipStatus types.MembershipStatus

	// LatestScore is nil when the member has no assessment yet. A literal
	// zero is a perfect score and must survive storage round-trips.
	LatestScore            *float64
	ExternalEcoRecognition bool

	Location Location
	Contact  Contact

	LogoSourceURL     string
	LogoLocalFilename string

	PublishState types.PublishState
	CategoryTags []types.CategoryTag

	Archived   bool
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Location holds the member's geographic placement
type Location struct {
	Country  string
	Region   string
	Name     string
	Address  string
	Address2 string
	Lat      float64
	Lng      float64
}

// Contact holds the member's public contact details. Any field may be empty.
type Contact struct {
	Website string
	Email   string
	Phone   string
}

// Refresh recomputes every derived field from the membership fields. It is
// idempotent: applying it twice yields the same record.
func (m *Member) Refresh(seenAt time.Time) {
	m.PublishState = types.PublishStateFor(m.MembershipStatus)
	m.CategoryTags = DeriveCategories(m.MembershipType, m.MembershipLevel, m.MembershipStatus)
	m.Archived = false
	m.LastSeenAt = seenAt
}

// DeriveCategories computes the display grouping tags for a membership
// triple. It is a pure function: same inputs, same tags.
//
// Only active members carry tier tags. Members restricted at the level tier
// keep a restricted tag while active so the restriction is visible in
// listings; any non-active status clears all tags.
func DeriveCategories(typ types.MembershipType, level types.MembershipLevel, status types.MembershipStatus) []types.CategoryTag {
	if status != types.MembershipStatusActive {
		return nil
	}

	switch typ {
	case types.MembershipTypeDigital:
		return []types.CategoryTag{"digital-member"}

	case types.MembershipTypeCertified:
		switch level {
		case types.MembershipLevelGold,
			types.MembershipLevelSilver,
			types.MembershipLevelBronze:
			return []types.CategoryTag{types.CategoryTag("certified-" + level.String() + "-member")}
		case types.MembershipLevelRestricted:
			return []types.CategoryTag{"restricted-member"}
		default:
			return nil
		}

	default:
		return nil
	}
}
