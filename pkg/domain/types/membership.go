package types

import "strings"

// MembershipType represents how a member participates in the programme
type MembershipType string

const (
	MembershipTypeCertified MembershipType = "certified"
	MembershipTypeDigital   MembershipType = "digital"
	MembershipTypeNone      MembershipType = "none"
)

// AllMembershipTypes returns all valid membership types
func AllMembershipTypes() []MembershipType {
	return []MembershipType{
		MembershipTypeCertified,
		MembershipTypeDigital,
		MembershipTypeNone,
	}
}

// IsValid checks if the membership type is valid
func (t MembershipType) IsValid() bool {
	switch t {
	case MembershipTypeCertified,
		MembershipTypeDigital,
		MembershipTypeNone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the membership type
func (t MembershipType) String() string {
	return string(t)
}

// ParseMembershipType folds an upstream type label to the canonical enum.
// Upstream generations disagree on casing (CERTIFIED vs certified).
// Unrecognized labels map to MembershipTypeNone, never an error.
func ParseMembershipType(s string) MembershipType {
	t := MembershipType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return MembershipTypeNone
	}
	return t
}

// MembershipStatus represents the member's current standing
type MembershipStatus string

const (
	MembershipStatusActive     MembershipStatus = "active"
	MembershipStatusInactive   MembershipStatus = "inactive"
	MembershipStatusRestricted MembershipStatus = "restricted"
	MembershipStatusClosed     MembershipStatus = "closed"
)

// IsValid checks if the membership status is valid
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusActive,
		MembershipStatusInactive,
		MembershipStatusRestricted,
		MembershipStatusClosed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the membership status
func (s MembershipStatus) String() string {
	return string(s)
}

// ParseMembershipStatus folds an upstream status label to the canonical
// enum. The Portal reports "suspended" where the Hub reports "RESTRICTED";
// both mean the same standing. Unrecognized labels map to inactive so the
// record is retained but unpublished and untagged.
func ParseMembershipStatus(s string) MembershipStatus {
	folded := strings.ToLower(strings.TrimSpace(s))
	if folded == "suspended" {
		return MembershipStatusRestricted
	}
	status := MembershipStatus(folded)
	if !status.IsValid() {
		return MembershipStatusInactive
	}
	return status
}
