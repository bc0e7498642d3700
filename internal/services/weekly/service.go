package weekly

import (
	"context"
	"fmt"
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/metrics"
	"github.com/creatorsconnections/tokboard/internal/models"
	counterRepo "github.com/creatorsconnections/tokboard/internal/repositories/counter"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	guildConfigRepo guildconfigRepo.Repository
	counterRepo     counterRepo.Repository
	board           board.Service
	handOff         handoff.Service
	clock           clock.Clock
	logger          *logrus.Entry
	pollInterval    time.Duration
}

// New creates a new weekly scheduler
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GuildConfigRepo == nil {
		return nil, ErrNilGuildConfigRepo
	}

	if cfg.CounterRepo == nil {
		return nil, ErrNilCounterRepo
	}

	if cfg.Board == nil {
		return nil, ErrNilBoard
	}

	if cfg.HandOff == nil {
		return nil, ErrNilHandOff
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &service{
		guildConfigRepo: cfg.GuildConfigRepo,
		counterRepo:     cfg.CounterRepo,
		board:           cfg.Board,
		handOff:         cfg.HandOff,
		clock:           cfg.Clock,
		logger:          logger,
		pollInterval:    pollInterval,
	}, nil
}

// Run sweeps immediately and then once per poll interval until cancelled.
// A missed boundary is caught up on the next sweep, so downtime across a
// boundary still produces exactly one rollover.
func (s *service) Run(ctx context.Context) error {
	for {
		if err := s.Sweep(ctx); err != nil {
			s.logger.WithError(err).Error("weekly sweep failed")
		}

		timer := s.clock.NewTimer(s.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C():
		}
	}
}

// Sweep rolls over every guild whose boundary has passed since its last reset
func (s *service) Sweep(ctx context.Context) error {
	out, err := s.guildConfigRepo.List(ctx, &guildconfigRepo.ListInput{})
	if err != nil {
		return fmt.Errorf("failed to list guild configs: %w", err)
	}

	now := s.clock.Now()
	for _, cfg := range out.Configs {
		if err := s.sweepGuild(ctx, cfg, now); err != nil {
			s.logger.WithField("guild_id", cfg.GuildID).WithError(err).Error("weekly rollover failed")
		}
	}
	return nil
}

func (s *service) sweepGuild(ctx context.Context, cfg *models.GuildConfig, now time.Time) error {
	boundary, err := boundaryFor(cfg, now)
	if err != nil {
		return err
	}
	marker := boundary.UTC().Format(time.RFC3339)

	last, err := s.counterRepo.GetLastReset(ctx, &counterRepo.GetLastResetInput{GuildID: cfg.GuildID})
	if err != nil {
		return fmt.Errorf("failed to read last reset: %w", err)
	}
	if last.Boundary == marker {
		return nil
	}

	snapshot, err := s.board.WeeklySnapshot(ctx, &board.WeeklySnapshotInput{GuildID: cfg.GuildID})
	if err != nil {
		return fmt.Errorf("failed to take weekly snapshot: %w", err)
	}

	// a failed hand-off parks the snapshot, so the rollover still proceeds
	err = s.handOff.Deliver(ctx, &handoff.DeliverInput{
		Snapshot: snapshot,
		Role:     models.RoleSoreFinger,
	})
	if err != nil {
		s.logger.WithField("guild_id", cfg.GuildID).WithError(err).Error("failed to hand off weekly snapshot")
	}

	if err := s.board.ResetWeekly(ctx, &board.ResetWeeklyInput{GuildID: cfg.GuildID}); err != nil {
		return fmt.Errorf("failed to reset weekly counters: %w", err)
	}

	err = s.counterRepo.SetLastReset(ctx, &counterRepo.SetLastResetInput{
		GuildID:  cfg.GuildID,
		Boundary: marker,
	})
	if err != nil {
		return fmt.Errorf("failed to record reset marker: %w", err)
	}

	metrics.WeeklyResets.Inc()
	s.logger.WithFields(logrus.Fields{
		"guild_id": cfg.GuildID,
		"boundary": marker,
	}).Info("weekly counters rolled over")
	return nil
}

// boundaryFor returns the most recent weekly boundary at or before now,
// in the guild's timezone
func boundaryFor(cfg *models.GuildConfig, now time.Time) (time.Time, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	day := cfg.WeeklyDay
	hour := cfg.WeeklyHour
	minute := cfg.WeeklyMinute
	if day < 1 || day > 7 {
		day = DefaultWeeklyDay
		hour = DefaultWeeklyHour
		minute = 0
	}

	localNow := now.In(loc)

	// ISO weekday, Monday=1 .. Sunday=7
	weekday := int(localNow.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	daysBack := weekday - day
	if daysBack < 0 {
		daysBack += 7
	}

	candidate := time.Date(localNow.Year(), localNow.Month(), localNow.Day()-daysBack, hour, minute, 0, 0, loc)
	if candidate.After(localNow) {
		candidate = candidate.AddDate(0, 0, -7)
	}
	return candidate, nil
}
