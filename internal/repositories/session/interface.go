package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/creatorsconnections/tokboard/internal/repositories/session Repository

import (
	"context"

	"github.com/creatorsconnections/tokboard/internal/models"
)

// Repository defines the interface for live session persistence
type Repository interface {
	// NextSessionID allocates the next monotonic session ID for a guild
	NextSessionID(ctx context.Context, input *NextSessionIDInput) (*NextSessionIDOutput, error)

	// SaveSession persists a session record
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)
}
