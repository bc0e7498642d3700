package counter

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/creatorsconnections/tokboard/internal/repositories/counter Repository

import (
	"context"

	"github.com/creatorsconnections/tokboard/internal/models"
)

// Repository persists a guild's weekly contributor counters and the marker
// guarding the weekly reset against double fires. Values are written whole;
// session-scoped counters are deliberately not persisted.
type Repository interface {
	// SaveWeekly persists the full weekly counter set for a guild
	SaveWeekly(ctx context.Context, input *SaveWeeklyInput) error

	// GetWeekly retrieves a guild's weekly counter set; an empty set is
	// returned when nothing has been persisted yet
	GetWeekly(ctx context.Context, input *GetWeeklyInput) (*models.CounterSet, error)

	// SetLastReset records the boundary instant of the last weekly reset
	SetLastReset(ctx context.Context, input *SetLastResetInput) error

	// GetLastReset retrieves the boundary instant of the last weekly
	// reset; empty when no reset has happened
	GetLastReset(ctx context.Context, input *GetLastResetInput) (*GetLastResetOutput, error)
}
