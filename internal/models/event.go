package models

import (
	"time"
)

// EventKind identifies the type of a normalized live event
type EventKind string

const (
	// EventKindGift indicates a monetized gift sent by a viewer
	EventKindGift EventKind = "gift"

	// EventKindLike indicates one or more taps, possibly batched by the source
	EventKindLike EventKind = "like"

	// EventKindComment indicates a chat comment during the broadcast
	EventKindComment EventKind = "comment"
)

// Event is a normalized record of a single notification from the live source
type Event struct {
	// Kind is the type of engagement the event carries
	Kind EventKind

	// Handle is the raw TikTok handle of the viewer, without the @ prefix
	Handle string

	// Delta is the metric increment: the gift's coin value for gifts,
	// the number of taps in the batch for likes, 1 for comments
	Delta int

	// Timestamp is when the event was normalized
	Timestamp time.Time
}
