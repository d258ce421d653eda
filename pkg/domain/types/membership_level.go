package types

// MembershipLevel represents the certification tier of a member
type MembershipLevel string

const (
	MembershipLevelGold       MembershipLevel = "gold"
	MembershipLevelSilver     MembershipLevel = "silver"
	MembershipLevelBronze     MembershipLevel = "bronze"
	MembershipLevelRestricted MembershipLevel = "restricted"
	MembershipLevelNone       MembershipLevel = "none"
)

// IsValid checks if the membership level is valid
func (l MembershipLevel) IsValid() bool {
	switch l {
	case MembershipLevelGold,
		MembershipLevelSilver,
		MembershipLevelBronze,
		MembershipLevelRestricted,
		MembershipLevelNone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the membership level
func (l MembershipLevel) String() string {
	return string(l)
}

// levelLabels maps the free-text tier labels used by the Hub API to the
// canonical levels. Labels not listed here map to MembershipLevelNone.
var levelLabels = map[string]MembershipLevel{
	"Certified Bronze Member": MembershipLevelBronze,
	"Certified Silver Member": MembershipLevelSilver,
	"Certified Gold Member":   MembershipLevelGold,
	"Restricted":              MembershipLevelRestricted,
}

// LevelFromLabel folds an upstream free-text tier label to the canonical
// level. It never fails: anything unrecognized is MembershipLevelNone.
func LevelFromLabel(label string) MembershipLevel {
	if level, ok := levelLabels[label]; ok {
		return level
	}
	return MembershipLevelNone
}
