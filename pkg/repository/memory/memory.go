package memory

import (
	"github.com/reef-world/finsync/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	member *memberRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		member: newMemberRepository(),
	}
}

func (m *Memory) Member() interfaces.MemberRepository {
	return m.member
}

func (m *Memory) Close() error {
	return nil
}
