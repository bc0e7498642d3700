package models

import (
	"time"
)

// Session represents one tracked live broadcast
type Session struct {
	// ID is a monotonically increasing identifier, unique per guild
	ID int64

	// GuildID is the Discord server this session belongs to
	GuildID string

	// CreatorHandle is the TikTok handle that was live
	CreatorHandle string

	// StartedAt is when the broadcast connection was established
	StartedAt time.Time

	// EndedAt is when the broadcast ended; nil while the session is open
	EndedAt *time.Time
}
