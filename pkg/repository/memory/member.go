package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
)

type memberRepository struct {
	mu      sync.RWMutex
	members map[types.MemberID]*model.Member
}

func newMemberRepository() *memberRepository {
	return &memberRepository{
		members: make(map[types.MemberID]*model.Member),
	}
}

// copyMember creates a deep copy of a member
func copyMember(member *model.Member) *model.Member {
	copied := *member

	if member.LatestScore != nil {
		score := *member.LatestScore
		copied.LatestScore = &score
	}
	if member.CategoryTags != nil {
		copied.CategoryTags = make([]types.CategoryTag, len(member.CategoryTags))
		copy(copied.CategoryTags, member.CategoryTags)
	}

	return &copied
}

func (r *memberRepository) Get(ctx context.Context, id types.MemberID) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, exists := r.members[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrMemberNotFound, "no such member", goerr.V("id", id))
	}

	return copyMember(member), nil
}

func (r *memberRepository) Put(ctx context.Context, member *model.Member) error {
	if err := member.ExternalID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid member ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyMember(member)
	stored.UpdatedAt = time.Now().UTC()
	if existing, exists := r.members[member.ExternalID]; exists {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = stored.UpdatedAt
	}

	r.members[stored.ExternalID] = stored
	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*model.Member, 0, len(r.members))
	for _, member := range r.members {
		members = append(members, copyMember(member))
	}

	return members, nil
}

func (r *memberRepository) Archive(ctx context.Context, id types.MemberID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, exists := r.members[id]
	if !exists {
		return goerr.Wrap(model.ErrMemberNotFound, "no such member", goerr.V("id", id))
	}

	member.Archived = true
	member.UpdatedAt = time.Now().UTC()
	return nil
}
