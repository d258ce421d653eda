package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Member() MemberRepository

	Close() error
}
