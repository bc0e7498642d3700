package snapshot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/creatorsconnections/tokboard/internal/repositories/snapshot Repository

import (
	"context"
)

// Repository stores leaderboard snapshots whose hand-off failed past the
// retry budget, so they can be recovered administratively instead of lost
type Repository interface {
	// Park persists an undeliverable snapshot
	Park(ctx context.Context, input *ParkInput) error

	// List retrieves all parked snapshots for a guild
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}
