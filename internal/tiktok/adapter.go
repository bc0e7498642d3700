package tiktok

import (
	"fmt"
	"time"

	"github.com/creatorsconnections/tokboard/internal/models"
)

// Frame type discriminators used by the webcast gateway
const (
	frameGift    = "gift"
	frameLike    = "like"
	frameComment = "comment"
	framePing    = "ping"
	frameLiveEnd = "live_end"
)

// frame mirrors the gateway's JSON envelope for a single webcast message
type frame struct {
	Type string `json:"type"`
	User struct {
		UniqueID string `json:"unique_id"`
	} `json:"user"`
	Gift struct {
		DiamondCount int `json:"diamond_count"`
		RepeatCount  int `json:"repeat_count"`
	} `json:"gift"`
	LikeCount int   `json:"like_count"`
	Timestamp int64 `json:"timestamp"`
}

// normalize converts a decoded gift/like/comment frame into a uniform event
// record. Control frames (ping, live_end) are handled by the stream before
// normalization. Frames that cannot be normalized are rejected with
// ErrMalformedEvent and must be dropped, never propagated.
func normalize(f *frame, now time.Time) (*models.Event, error) {
	if f.User.UniqueID == "" {
		return nil, fmt.Errorf("%w: missing user handle", ErrMalformedEvent)
	}

	ts := now
	if f.Timestamp > 0 {
		ts = time.UnixMilli(f.Timestamp)
	}

	switch f.Type {
	case frameGift:
		// repeat_count is the streak length for combo gifts; the gateway
		// reports the final count once the streak ends
		repeat := f.Gift.RepeatCount
		if repeat < 1 {
			repeat = 1
		}
		delta := f.Gift.DiamondCount * repeat
		if delta < 1 {
			delta = repeat
		}
		return &models.Event{
			Kind:      models.EventKindGift,
			Handle:    f.User.UniqueID,
			Delta:     delta,
			Timestamp: ts,
		}, nil

	case frameLike:
		// likes arrive pre-batched; a missing count means a single tap
		delta := f.LikeCount
		if delta < 1 {
			delta = 1
		}
		return &models.Event{
			Kind:      models.EventKindLike,
			Handle:    f.User.UniqueID,
			Delta:     delta,
			Timestamp: ts,
		}, nil

	case frameComment:
		return &models.Event{
			Kind:      models.EventKindComment,
			Handle:    f.User.UniqueID,
			Delta:     1,
			Timestamp: ts,
		}, nil
	}

	return nil, fmt.Errorf("%w: unrecognized frame type %q", ErrMalformedEvent, f.Type)
}
