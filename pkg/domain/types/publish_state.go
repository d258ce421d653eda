package types

// PublishState controls whether a member appears in public listings
type PublishState string

const (
	PublishStatePublished PublishState = "published"
	PublishStatePending   PublishState = "pending"
)

// IsValid checks if the publish state is valid
func (p PublishState) IsValid() bool {
	switch p {
	case PublishStatePublished, PublishStatePending:
		return true
	default:
		return false
	}
}

// String returns the string representation of the publish state
func (p PublishState) String() string {
	return string(p)
}

// PublishStateFor derives the publish state from a membership status.
// Only active members are published; everything else stays pending.
func PublishStateFor(status MembershipStatus) PublishState {
	if status == MembershipStatusActive {
		return PublishStatePublished
	}
	return PublishStatePending
}
