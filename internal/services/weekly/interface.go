package weekly

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/creatorsconnections/tokboard/internal/services/weekly Service

import (
	"context"
)

// Service rolls the weekly counters over at each guild's configured
// boundary: it posts the closing weekly leaderboard, rotates the Sore
// Finger role, and resets the weekly scope exactly once per boundary
type Service interface {
	// Run polls for due boundaries until the context is cancelled
	Run(ctx context.Context) error

	// Sweep performs one pass over all configured guilds
	Sweep(ctx context.Context) error
}
