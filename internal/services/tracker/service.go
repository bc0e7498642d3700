package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/metrics"
	"github.com/creatorsconnections/tokboard/internal/models"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	sessionRepo "github.com/creatorsconnections/tokboard/internal/repositories/session"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	"github.com/creatorsconnections/tokboard/internal/tiktok"
	"github.com/sirupsen/logrus"
)

// guildTracker is the supervised state for one guild's tracking goroutine
type guildTracker struct {
	guildID string
	handle  string
	cancel  context.CancelFunc
	done    chan struct{}

	mu         sync.Mutex
	connection ConnectionState
	sessionSt  SessionState
	session    *models.Session
}

func (t *guildTracker) setConnection(state ConnectionState) {
	t.mu.Lock()
	t.connection = state
	t.mu.Unlock()
}

func (t *guildTracker) setSession(state SessionState, sess *models.Session) {
	t.mu.Lock()
	t.sessionSt = state
	t.session = sess
	t.mu.Unlock()
}

func (t *guildTracker) snapshot() (ConnectionState, SessionState, *models.Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connection, t.sessionSt, t.session
}

// service implements the Service interface
type service struct {
	source          tiktok.LiveSource
	board           board.Service
	handOff         handoff.Service
	publisher       handoff.Publisher
	sessionRepo     sessionRepo.Repository
	guildConfigRepo guildconfigRepo.Repository
	clock           clock.Clock
	logger          *logrus.Entry

	baseBackoff time.Duration
	maxBackoff  time.Duration
	window      time.Duration

	mu       sync.Mutex
	trackers map[string]*guildTracker
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Source == nil {
		return nil, ErrNilSource
	}

	if cfg.Board == nil {
		return nil, ErrNilBoard
	}

	if cfg.HandOff == nil {
		return nil, ErrNilHandOff
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.GuildConfigRepo == nil {
		return nil, ErrNilGuildConfigRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	baseBackoff := cfg.ReconnectBackoff
	if baseBackoff <= 0 {
		baseBackoff = DefaultReconnectBackoff
	}

	maxBackoff := cfg.ReconnectMaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = DefaultReconnectMaxBackoff
	}

	window := cfg.ReconnectWindow
	if window <= 0 {
		window = DefaultReconnectWindow
	}

	return &service{
		source:          cfg.Source,
		board:           cfg.Board,
		handOff:         cfg.HandOff,
		publisher:       cfg.Publisher,
		sessionRepo:     cfg.SessionRepo,
		guildConfigRepo: cfg.GuildConfigRepo,
		clock:           cfg.Clock,
		logger:          logger,
		baseBackoff:     baseBackoff,
		maxBackoff:      maxBackoff,
		window:          window,
		trackers:        make(map[string]*guildTracker),
	}, nil
}

// StartTracking validates the guild's configuration and spawns the
// tracking goroutine. The goroutine outlives the request context.
func (s *service) StartTracking(ctx context.Context, input *StartTrackingInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	cfg, err := s.guildConfigRepo.Get(ctx, &guildconfigRepo.GetInput{GuildID: input.GuildID})
	if err != nil {
		return fmt.Errorf("failed to load guild config: %w", err)
	}

	if !cfg.TrackingEnabled {
		return ErrTrackingDisabled
	}

	if cfg.CreatorHandle == "" {
		return ErrNoCreatorHandle
	}

	if cfg.ChannelID == "" {
		return ErrNoTargetChannel
	}

	live, err := s.source.IsLive(ctx, cfg.CreatorHandle)
	if err != nil {
		return fmt.Errorf("failed to check live status: %w", err)
	}
	if !live {
		return ErrCreatorNotLive
	}

	s.mu.Lock()
	if _, ok := s.trackers[input.GuildID]; ok {
		s.mu.Unlock()
		return ErrAlreadyTracking
	}

	runCtx, cancel := context.WithCancel(context.Background())
	t := &guildTracker{
		guildID:    input.GuildID,
		handle:     cfg.CreatorHandle,
		cancel:     cancel,
		done:       make(chan struct{}),
		connection: ConnectionConnecting,
		sessionSt:  SessionIdle,
	}
	s.trackers[input.GuildID] = t
	s.mu.Unlock()

	go s.run(runCtx, t)

	s.logger.WithFields(logrus.Fields{
		"guild_id": input.GuildID,
		"handle":   cfg.CreatorHandle,
	}).Info("tracking started")
	return nil
}

// StopTracking cancels the guild's tracking goroutine and waits for it to
// finish closing any open session
func (s *service) StopTracking(ctx context.Context, input *StopTrackingInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	s.mu.Lock()
	t, ok := s.trackers[input.GuildID]
	s.mu.Unlock()
	if !ok {
		return ErrNotTracking
	}

	t.cancel()

	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status reports the guild's tracker state
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	s.mu.Lock()
	t, ok := s.trackers[input.GuildID]
	s.mu.Unlock()
	if !ok {
		return &StatusOutput{
			Connection: ConnectionDisconnected,
			Session:    SessionIdle,
		}, nil
	}

	connection, sessionState, sess := t.snapshot()
	out := &StatusOutput{
		Connection:    connection,
		Session:       sessionState,
		CreatorHandle: t.handle,
	}
	if sess != nil {
		out.SessionID = sess.ID
	}
	return out, nil
}

// StopAll stops every running tracker
func (s *service) StopAll(ctx context.Context) error {
	s.mu.Lock()
	trackers := make([]*guildTracker, 0, len(s.trackers))
	for _, t := range s.trackers {
		trackers = append(trackers, t)
	}
	s.mu.Unlock()

	for _, t := range trackers {
		t.cancel()
	}
	for _, t := range trackers {
		select {
		case <-t.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (s *service) remove(guildID string) {
	s.mu.Lock()
	delete(s.trackers, guildID)
	s.mu.Unlock()
}

// run is the per-guild supervision loop. A connection drop keeps the open
// session and retries with doubling backoff inside the reconnect window;
// a broadcast end closes the session and stops tracking.
func (s *service) run(ctx context.Context, t *guildTracker) {
	defer close(t.done)
	defer s.remove(t.guildID)
	defer t.setConnection(ConnectionDisconnected)

	logger := s.logger.WithFields(logrus.Fields{
		"guild_id": t.guildID,
		"handle":   t.handle,
	})

	backoff := s.baseBackoff
	var downSince time.Time

	for {
		stream, err := s.source.Subscribe(ctx, t.handle)
		if err != nil {
			if ctx.Err() != nil {
				s.closeSession(t, logger, "Tracking stopped.")
				return
			}

			if downSince.IsZero() {
				downSince = s.clock.Now()
			}
			if s.clock.Now().Sub(downSince) > s.window {
				logger.WithError(err).Error("reconnect window exhausted")
				s.announce(t.guildID, "Lost the live stream and could not reconnect. Closing the session.")
				s.closeSession(t, logger, "")
				return
			}

			t.setConnection(ConnectionReconnecting)
			metrics.ReconnectAttempts.Inc()
			logger.WithError(err).WithField("backoff", backoff).Warn("subscribe failed, retrying")

			if !s.sleep(ctx, backoff) {
				s.closeSession(t, logger, "Tracking stopped.")
				return
			}
			backoff = nextBackoff(backoff, s.maxBackoff)
			continue
		}

		backoff = s.baseBackoff
		downSince = time.Time{}
		t.setConnection(ConnectionLive)

		if _, sessionState, _ := t.snapshot(); sessionState == SessionIdle {
			if err := s.openSession(ctx, t); err != nil {
				logger.WithError(err).Error("failed to open session")
				_ = stream.Close()
				return
			}
		}

		s.consume(ctx, t, stream)

		if ctx.Err() != nil {
			_ = stream.Close()
			s.closeSession(t, logger, "Tracking stopped.")
			return
		}

		streamErr := stream.Err()
		if errors.Is(streamErr, tiktok.ErrStreamEnded) {
			logger.Info("broadcast ended")
			s.closeSession(t, logger, "The live has ended. Final leaderboard incoming!")
			return
		}

		t.setConnection(ConnectionReconnecting)
		metrics.ReconnectAttempts.Inc()
		downSince = s.clock.Now()
		logger.WithError(streamErr).Warn("stream dropped, reconnecting")

		if !s.sleep(ctx, backoff) {
			s.closeSession(t, logger, "Tracking stopped.")
			return
		}
		backoff = nextBackoff(backoff, s.maxBackoff)
	}
}

// consume applies stream events to the board until the stream terminates
// or the tracker is cancelled
func (s *service) consume(ctx context.Context, t *guildTracker, stream tiktok.Stream) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-stream.Events():
			if !ok {
				return
			}
			err := s.board.Apply(ctx, &board.ApplyInput{
				GuildID: t.guildID,
				Event:   event,
			})
			if err != nil {
				s.logger.WithFields(logrus.Fields{
					"guild_id": t.guildID,
					"kind":     event.Kind,
				}).WithError(err).Warn("failed to apply event")
			}
		}
	}
}

func (s *service) openSession(ctx context.Context, t *guildTracker) error {
	idOut, err := s.sessionRepo.NextSessionID(ctx, &sessionRepo.NextSessionIDInput{GuildID: t.guildID})
	if err != nil {
		return fmt.Errorf("failed to allocate session ID: %w", err)
	}

	sess := &models.Session{
		ID:            idOut.SessionID,
		GuildID:       t.guildID,
		CreatorHandle: t.handle,
		StartedAt:     s.clock.Now(),
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.board.OpenSession(ctx, &board.OpenSessionInput{
		GuildID:   t.guildID,
		SessionID: sess.ID,
	}); err != nil {
		return fmt.Errorf("failed to open board session: %w", err)
	}

	t.setSession(SessionOpen, sess)
	metrics.SessionsOpened.Inc()
	s.announce(t.guildID, fmt.Sprintf("@%s is live! Tracking gifts and taps.", t.handle))
	return nil
}

// closeSession delivers the closing snapshot, rotates the Top Gifter role,
// and discards the session scope. It runs on a fresh context so a stop
// request cannot abort the final posting.
func (s *service) closeSession(t *guildTracker, logger *logrus.Entry, message string) {
	_, sessionState, sess := t.snapshot()
	if sessionState != SessionOpen || sess == nil {
		logger.Warn("broadcast end with no open session")
		return
	}

	t.setSession(SessionClosing, sess)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if message != "" {
		s.announce(t.guildID, message)
	}

	snapshot, err := s.board.SessionSnapshot(ctx, &board.SessionSnapshotInput{GuildID: t.guildID})
	if err != nil {
		logger.WithError(err).Error("failed to take closing snapshot")
	} else {
		err = s.handOff.Deliver(ctx, &handoff.DeliverInput{
			Snapshot: snapshot,
			Role:     models.RoleTopGifter,
		})
		if err != nil {
			logger.WithError(err).Error("failed to hand off closing snapshot")
		}
	}

	if err := s.board.CloseSession(ctx, &board.CloseSessionInput{GuildID: t.guildID}); err != nil {
		logger.WithError(err).Error("failed to close board session")
	}

	endedAt := s.clock.Now()
	sess.EndedAt = &endedAt
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		logger.WithError(err).Error("failed to save ended session")
	}

	t.setSession(SessionIdle, nil)
	metrics.SessionsClosed.Inc()
}

func (s *service) announce(guildID, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.publisher.Announce(ctx, &handoff.AnnounceInput{
		GuildID: guildID,
		Message: message,
	})
	if err != nil {
		s.logger.WithField("guild_id", guildID).WithError(err).Warn("failed to announce")
	}
}

// sleep waits for the backoff to elapse; it returns false on cancellation
func (s *service) sleep(ctx context.Context, d time.Duration) bool {
	timer := s.clock.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return false
	case <-timer.C():
		return true
	}
}

func nextBackoff(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}
