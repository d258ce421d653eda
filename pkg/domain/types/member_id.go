package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// MemberID is the upstream-assigned stable identifier for a member.
// It is the reconciliation key: exactly one stored member exists per ID.
type MemberID string

// Validate checks if the MemberID is usable as a store key
func (m MemberID) Validate() error {
	if m == "" {
		return goerr.New("member ID cannot be empty")
	}
	return nil
}

// String returns the string representation of the member ID
func (m MemberID) String() string {
	return string(m)
}

// TraceID identifies a single ingestion run in log output
type TraceID string

// NewTraceID generates a new UUID v4 TraceID
func NewTraceID() TraceID {
	return TraceID(uuid.New().String())
}

// String returns the string representation of the trace ID
func (t TraceID) String() string {
	return string(t)
}
