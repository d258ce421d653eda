package types

import "github.com/m-mizutani/goerr/v2"

// SourceKind identifies an upstream API generation
type SourceKind string

const (
	SourceHub    SourceKind = "hub"
	SourcePortal SourceKind = "portal"
)

// IsValid checks if the source kind is valid
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceHub, SourcePortal:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source kind
func (k SourceKind) String() string {
	return string(k)
}

// ParseSourceKind parses a string into a SourceKind
func ParseSourceKind(s string) (SourceKind, error) {
	kind := SourceKind(s)
	if !kind.IsValid() {
		return "", goerr.New("invalid source kind", goerr.V("kind", s))
	}
	return kind, nil
}
