package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/creatorsconnections/tokboard/internal/services/tracker Service

import (
	"context"
)

// Service supervises per-guild live tracking: it subscribes to the
// creator's broadcast, drives the session lifecycle on the board, and
// reconnects across transient connection drops
type Service interface {
	// StartTracking begins tracking the guild's configured creator
	StartTracking(ctx context.Context, input *StartTrackingInput) error

	// StopTracking stops tracking and closes any open session
	StopTracking(ctx context.Context, input *StopTrackingInput) error

	// Status reports the guild's connection and session state
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// StopAll stops every running tracker, for shutdown
	StopAll(ctx context.Context) error
}
