package interfaces

import (
	"context"

	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
)

// MemberRepository defines the interface for Member data persistence.
// Members are keyed by external ID; Get is the reconciliation hot path and
// implementations must resolve it by direct key lookup, not a scan.
type MemberRepository interface {
	// Get retrieves a member by external ID.
	// Returns model.ErrMemberNotFound when no member exists.
	Get(ctx context.Context, id types.MemberID) (*model.Member, error)

	// Put writes a member record, creating or replacing the document
	// stored under its external ID
	Put(ctx context.Context, member *model.Member) error

	// List retrieves all members, archived ones included
	List(ctx context.Context) ([]*model.Member, error)

	// Archive soft-deletes a member by external ID
	Archive(ctx context.Context, id types.MemberID) error
}
