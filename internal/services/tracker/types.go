package tracker

import (
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	sessionRepo "github.com/creatorsconnections/tokboard/internal/repositories/session"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	"github.com/creatorsconnections/tokboard/internal/tiktok"
	"github.com/sirupsen/logrus"
)

// ConnectionState describes the live-source connection
type ConnectionState string

const (
	// ConnectionDisconnected means no tracking is running
	ConnectionDisconnected ConnectionState = "disconnected"

	// ConnectionConnecting means the first subscribe is in flight
	ConnectionConnecting ConnectionState = "connecting"

	// ConnectionLive means events are flowing
	ConnectionLive ConnectionState = "live"

	// ConnectionReconnecting means the connection dropped and the tracker
	// is retrying with backoff
	ConnectionReconnecting ConnectionState = "reconnecting"
)

// SessionState describes the board session lifecycle
type SessionState string

const (
	// SessionIdle means no session is open
	SessionIdle SessionState = "idle"

	// SessionOpen means a session is accumulating counters
	SessionOpen SessionState = "open"

	// SessionClosing means the closing snapshot is being delivered
	SessionClosing SessionState = "closing"
)

const (
	// DefaultReconnectBackoff is the delay before the first reconnect attempt
	DefaultReconnectBackoff = time.Second

	// DefaultReconnectMaxBackoff caps the doubling reconnect delay
	DefaultReconnectMaxBackoff = time.Minute

	// DefaultReconnectWindow is how long the tracker keeps retrying after
	// a drop before giving up and closing the session
	DefaultReconnectWindow = 5 * time.Minute
)

// Config holds the dependencies for the tracker service
type Config struct {
	Source          tiktok.LiveSource
	Board           board.Service
	HandOff         handoff.Service
	Publisher       handoff.Publisher
	SessionRepo     sessionRepo.Repository
	GuildConfigRepo guildconfigRepo.Repository
	Clock           clock.Clock
	Logger          *logrus.Entry

	// ReconnectBackoff overrides the initial reconnect delay when positive
	ReconnectBackoff time.Duration

	// ReconnectMaxBackoff overrides the backoff cap when positive
	ReconnectMaxBackoff time.Duration

	// ReconnectWindow overrides the give-up window when positive
	ReconnectWindow time.Duration
}

// StartTrackingInput holds the parameters for StartTracking
type StartTrackingInput struct {
	GuildID string
}

// StopTrackingInput holds the parameters for StopTracking
type StopTrackingInput struct {
	GuildID string
}

// StatusInput holds the parameters for Status
type StatusInput struct {
	GuildID string
}

// StatusOutput holds the tracker state for a guild
type StatusOutput struct {
	Connection ConnectionState
	Session    SessionState

	// SessionID is the open session's ID, zero when idle
	SessionID int64

	// CreatorHandle is the handle being tracked
	CreatorHandle string
}
