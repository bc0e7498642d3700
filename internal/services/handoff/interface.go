package handoff

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/creatorsconnections/tokboard/internal/services/handoff Service,Publisher,RoleRotator

import (
	"context"
)

// Service delivers leaderboard snapshots to the posting and role
// collaborators, retrying transient failures and parking snapshots that
// cannot be delivered at all
type Service interface {
	// Deliver posts a snapshot and rotates the associated role
	Deliver(ctx context.Context, input *DeliverInput) error
}

// Publisher posts leaderboard content to the guild's configured channel
type Publisher interface {
	// Publish posts a rendered leaderboard snapshot
	Publish(ctx context.Context, input *PublishInput) error

	// Announce posts a plain status message
	Announce(ctx context.Context, input *AnnounceInput) error
}

// RoleRotator moves a single-holder role to a new member
type RoleRotator interface {
	// SetRoleHolder makes the member the sole holder of the role
	SetRoleHolder(ctx context.Context, input *SetRoleHolderInput) error
}
