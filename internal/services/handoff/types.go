package handoff

import (
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/common/uuid"
	"github.com/creatorsconnections/tokboard/internal/models"
	snapshotRepo "github.com/creatorsconnections/tokboard/internal/repositories/snapshot"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxAttempts is the delivery retry budget
	DefaultMaxAttempts = 3

	// DefaultBaseBackoff is the delay before the first retry; it doubles on
	// each subsequent attempt
	DefaultBaseBackoff = time.Second
)

// Config holds the dependencies for the hand-off service
type Config struct {
	Publisher    Publisher
	RoleRotator  RoleRotator
	SnapshotRepo snapshotRepo.Repository
	UUID         uuid.UUID
	Clock        clock.Clock
	Logger       *logrus.Entry

	// MaxAttempts overrides the retry budget when positive
	MaxAttempts int

	// BaseBackoff overrides the initial retry delay when positive
	BaseBackoff time.Duration
}

// DeliverInput holds the parameters for Deliver
type DeliverInput struct {
	// Snapshot is the leaderboard snapshot to post
	Snapshot *models.LeaderboardSnapshot

	// Role is the single-holder role to rotate to the snapshot's leader.
	// Empty means no role rotation.
	Role models.RoleKind
}

// PublishInput holds the parameters for Publisher.Publish
type PublishInput struct {
	Snapshot *models.LeaderboardSnapshot
}

// AnnounceInput holds the parameters for Publisher.Announce
type AnnounceInput struct {
	GuildID string
	Message string
}

// SetRoleHolderInput holds the parameters for RoleRotator.SetRoleHolder
type SetRoleHolderInput struct {
	GuildID  string
	Role     models.RoleKind
	MemberID string
}
