package models

import (
	"time"
)

// CounterEntry holds one contributor's totals within a scope. The value and
// first-contribution timestamp for a metric are always read and written
// together; the pair is what tie-breaking depends on.
type CounterEntry struct {
	// Identity is the contributor the totals belong to
	Identity Identity

	// Gifts is the accumulated gift coin value
	Gifts int

	// Likes is the accumulated tap count
	Likes int

	// Comments is the accumulated comment count
	Comments int

	// FirstGiftAt is when the first gift in this scope arrived; zero if none
	FirstGiftAt time.Time

	// FirstLikeAt is when the first like in this scope arrived; zero if none
	FirstLikeAt time.Time
}

// CounterSet is the serializable form of one scope's counters, used to
// persist the weekly scope across restarts
type CounterSet struct {
	// GuildID is the Discord server the counters belong to
	GuildID string

	// Entries maps identity keys to their totals
	Entries map[string]*CounterEntry
}

// NewCounterSet returns an empty counter set for a guild
func NewCounterSet(guildID string) *CounterSet {
	return &CounterSet{
		GuildID: guildID,
		Entries: make(map[string]*CounterEntry),
	}
}
