package board

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/creatorsconnections/tokboard/internal/services/board Service

import (
	"context"

	"github.com/creatorsconnections/tokboard/internal/models"
)

// Service aggregates live events into per-session and weekly contributor
// counters and produces ranked leaderboard snapshots from them
type Service interface {
	// OpenSession starts accumulating session-scoped counters for a guild
	OpenSession(ctx context.Context, input *OpenSessionInput) error

	// Apply folds one normalized event into the open session scope (if
	// any) and the weekly scope
	Apply(ctx context.Context, input *ApplyInput) error

	// SessionSnapshot returns a ranked top-10 view of the open session
	SessionSnapshot(ctx context.Context, input *SessionSnapshotInput) (*models.LeaderboardSnapshot, error)

	// WeeklySnapshot returns a ranked top-10 view of the weekly scope
	WeeklySnapshot(ctx context.Context, input *WeeklySnapshotInput) (*models.LeaderboardSnapshot, error)

	// CloseSession discards the session scope; call after the closing
	// snapshot has been taken
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// ResetWeekly empties the weekly scope
	ResetWeekly(ctx context.Context, input *ResetWeeklyInput) error

	// MergeLink folds an unlinked handle's accumulated totals into the
	// newly linked member's entry, additively and without double counting
	MergeLink(ctx context.Context, input *MergeLinkInput) error
}
