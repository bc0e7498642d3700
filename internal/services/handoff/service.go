package handoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/common/uuid"
	"github.com/creatorsconnections/tokboard/internal/metrics"
	"github.com/creatorsconnections/tokboard/internal/models"
	snapshotRepo "github.com/creatorsconnections/tokboard/internal/repositories/snapshot"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	publisher    Publisher
	roleRotator  RoleRotator
	snapshotRepo snapshotRepo.Repository
	uuid         uuid.UUID
	clock        clock.Clock
	logger       *logrus.Entry
	maxAttempts  int
	baseBackoff  time.Duration
}

// New creates a new hand-off service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.RoleRotator == nil {
		return nil, ErrNilRoleRotator
	}

	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = DefaultBaseBackoff
	}

	return &service{
		publisher:    cfg.Publisher,
		roleRotator:  cfg.RoleRotator,
		snapshotRepo: cfg.SnapshotRepo,
		uuid:         cfg.UUID,
		clock:        cfg.Clock,
		logger:       logger,
		maxAttempts:  maxAttempts,
		baseBackoff:  baseBackoff,
	}, nil
}

// Deliver posts the snapshot, then rotates the role to the board leader.
// Posting failures past the retry budget park the snapshot for recovery;
// role failures are logged but never block or undo the posting.
func (s *service) Deliver(ctx context.Context, input *DeliverInput) error {
	if input == nil || input.Snapshot == nil {
		return ErrNilSnapshot
	}

	snapshot := input.Snapshot

	err := s.withRetry(ctx, func() error {
		return s.publisher.Publish(ctx, &PublishInput{Snapshot: snapshot})
	})
	if err != nil {
		if parkErr := s.park(ctx, snapshot, err); parkErr != nil {
			return fmt.Errorf("failed to park snapshot: %w", parkErr)
		}
		return fmt.Errorf("%w: %s", ErrHandOffExhausted, err)
	}

	if input.Role == "" {
		return nil
	}

	s.rotateRole(ctx, snapshot, input.Role)
	return nil
}

// withRetry runs fn up to maxAttempts times with doubling backoff between
// attempts. Context cancellation aborts the wait.
func (s *service) withRetry(ctx context.Context, fn func() error) error {
	backoff := s.baseBackoff

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt == s.maxAttempts {
			break
		}

		timer := s.clock.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(lastErr, ctx.Err())
		case <-timer.C():
		}
		backoff *= 2
	}

	return lastErr
}

func (s *service) rotateRole(ctx context.Context, snapshot *models.LeaderboardSnapshot, role models.RoleKind) {
	var (
		holder models.Identity
		ok     bool
	)
	switch role {
	case models.RoleTopGifter:
		holder, ok = snapshot.TopGifter()
	case models.RoleSoreFinger:
		holder, ok = snapshot.TopTapper()
	}

	if !ok {
		s.logger.WithFields(logrus.Fields{
			"guild_id": snapshot.GuildID,
			"role":     role,
		}).Info("board empty, role unchanged")
		return
	}

	if holder.Kind != models.IdentityKindLinked {
		s.logger.WithFields(logrus.Fields{
			"guild_id": snapshot.GuildID,
			"role":     role,
			"handle":   holder.Handle,
		}).Info("leader has no linked Discord account, role unchanged")
		return
	}

	err := s.withRetry(ctx, func() error {
		return s.roleRotator.SetRoleHolder(ctx, &SetRoleHolderInput{
			GuildID:  snapshot.GuildID,
			Role:     role,
			MemberID: holder.MemberID,
		})
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"guild_id":  snapshot.GuildID,
			"role":      role,
			"member_id": holder.MemberID,
		}).WithError(err).Error("failed to rotate role")
	}
}

func (s *service) park(ctx context.Context, snapshot *models.LeaderboardSnapshot, cause error) error {
	parked := &models.ParkedSnapshot{
		ID:       s.uuid.NewUUID(),
		Snapshot: snapshot,
		Reason:   cause.Error(),
		ParkedAt: s.clock.Now(),
	}

	if err := s.snapshotRepo.Park(ctx, &snapshotRepo.ParkInput{Parked: parked}); err != nil {
		return err
	}

	metrics.SnapshotsParked.Inc()
	s.logger.WithFields(logrus.Fields{
		"guild_id":  snapshot.GuildID,
		"parked_id": parked.ID,
	}).Warn("snapshot parked after failed hand-off")
	return nil
}
