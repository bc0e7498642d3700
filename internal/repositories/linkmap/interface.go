package linkmap

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/creatorsconnections/tokboard/internal/repositories/linkmap Repository

import (
	"context"
)

// Repository defines the interface for the TikTok-handle to Discord-member
// link registry
type Repository interface {
	// Link records that a TikTok handle belongs to a Discord member,
	// replacing any previous link for that handle
	Link(ctx context.Context, input *LinkInput) error

	// Resolve returns the Discord member linked to a handle
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
