package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// CategoryTag is a derived classification label used for display grouping.
// Tags are always recomputed from membership fields, never hand-edited.
type CategoryTag string

var tagPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the CategoryTag is valid
func (c CategoryTag) Validate() error {
	if c == "" {
		return goerr.New("category tag cannot be empty")
	}
	if !tagPattern.MatchString(string(c)) {
		return goerr.New("category tag must be lowercase alphanumeric with hyphens", goerr.V("tag", c))
	}
	return nil
}

// String returns the string representation of CategoryTag
func (c CategoryTag) String() string {
	return string(c)
}
