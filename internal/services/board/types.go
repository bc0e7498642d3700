package board

import (
	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/models"
	"github.com/creatorsconnections/tokboard/internal/repositories/counter"
	"github.com/creatorsconnections/tokboard/internal/repositories/linkmap"
	"github.com/sirupsen/logrus"
)

// DefaultMaxEntries is how many rows each board keeps
const DefaultMaxEntries = 10

// Config holds configuration for the board service
type Config struct {
	// LinkRepo resolves TikTok handles to Discord members
	LinkRepo linkmap.Repository

	// CounterRepo persists the weekly scope across restarts
	CounterRepo counter.Repository

	// Clock stamps snapshots
	Clock clock.Clock

	// Logger for aggregation events
	Logger *logrus.Entry

	// MaxEntries caps each ranked board; defaults to 10
	MaxEntries int
}

type OpenSessionInput struct {
	GuildID   string
	SessionID int64
}

type ApplyInput struct {
	GuildID string
	Event   models.Event
}

type SessionSnapshotInput struct {
	GuildID string
}

type WeeklySnapshotInput struct {
	GuildID string
}

type CloseSessionInput struct {
	GuildID string
}

type ResetWeeklyInput struct {
	GuildID string
}

type MergeLinkInput struct {
	GuildID  string
	Handle   string
	MemberID string
}
