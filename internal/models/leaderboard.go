package models

import (
	"time"
)

// Scope identifies which counter scope a snapshot was taken from
type Scope string

const (
	// ScopeSession covers a single live broadcast
	ScopeSession Scope = "session"

	// ScopeWeek covers the window between two weekly resets
	ScopeWeek Scope = "week"
)

// Entry is one ranked row of a leaderboard
type Entry struct {
	// Identity is the contributor this row belongs to
	Identity Identity

	// Value is the metric total at snapshot time
	Value int

	// Rank is the 1-based position on the board
	Rank int
}

// LeaderboardSnapshot is an immutable point-in-time view of a counter scope.
// Both boards are truncated to the top 10 and never padded.
type LeaderboardSnapshot struct {
	// GuildID is the Discord server the snapshot belongs to
	GuildID string

	// Scope is the counter scope the snapshot was taken from
	Scope Scope

	// SessionID is the session the snapshot covers; zero for weekly snapshots
	SessionID int64

	// TakenAt is when the snapshot was produced
	TakenAt time.Time

	// TopGifters is the ranked gift-value board
	TopGifters []Entry

	// TopTappers is the ranked like-count board
	TopTappers []Entry
}

// TopGifter returns the identity holding rank 1 on the gift board
func (s *LeaderboardSnapshot) TopGifter() (Identity, bool) {
	if len(s.TopGifters) == 0 {
		return Identity{}, false
	}
	return s.TopGifters[0].Identity, true
}

// TopTapper returns the identity holding rank 1 on the like board
func (s *LeaderboardSnapshot) TopTapper() (Identity, bool) {
	if len(s.TopTappers) == 0 {
		return Identity{}, false
	}
	return s.TopTappers[0].Identity, true
}
