package models

import (
	"time"
)

// ParkedSnapshot is a leaderboard snapshot whose hand-off to the posting or
// role collaborators failed past the retry budget. It is persisted for
// administrative recovery instead of being dropped.
type ParkedSnapshot struct {
	// ID is a unique identifier for the parked record
	ID string

	// Snapshot is the snapshot that could not be delivered
	Snapshot *LeaderboardSnapshot

	// Reason describes the delivery failure
	Reason string

	// ParkedAt is when the snapshot was parked
	ParkedAt time.Time
}
