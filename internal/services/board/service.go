package board

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/metrics"
	"github.com/creatorsconnections/tokboard/internal/models"
	counterRepo "github.com/creatorsconnections/tokboard/internal/repositories/counter"
	linkRepo "github.com/creatorsconnections/tokboard/internal/repositories/linkmap"
	"github.com/sirupsen/logrus"
)

// guildBoard holds one guild's counters. The session and weekly scopes are
// locked independently so a weekly reset never stalls session writes; each
// identity's (value, first-contribution) pair is only ever mutated with the
// scope lock held, so snapshot reads cannot observe torn entries. Weekly
// persistence writes also happen under weekMu, keeping the stored set in
// step with the in-memory one.
type guildBoard struct {
	sessionMu sync.Mutex
	sessionID int64
	session   map[string]*models.CounterEntry

	weekMu     sync.Mutex
	week       map[string]*models.CounterEntry
	weekLoaded bool
}

// service implements the Service interface
type service struct {
	linkRepo    linkRepo.Repository
	counterRepo counterRepo.Repository
	clock       clock.Clock
	logger      *logrus.Entry
	maxEntries  int

	mu     sync.Mutex
	guilds map[string]*guildBoard
}

// New creates a new board service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LinkRepo == nil {
		return nil, ErrNilLinkRepo
	}

	if cfg.CounterRepo == nil {
		return nil, ErrNilCounterRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &service{
		linkRepo:    cfg.LinkRepo,
		counterRepo: cfg.CounterRepo,
		clock:       cfg.Clock,
		logger:      logger,
		maxEntries:  maxEntries,
		guilds:      make(map[string]*guildBoard),
	}, nil
}

func (s *service) guild(guildID string) *guildBoard {
	s.mu.Lock()
	defer s.mu.Unlock()

	gb, ok := s.guilds[guildID]
	if !ok {
		gb = &guildBoard{
			session: make(map[string]*models.CounterEntry),
			week:    make(map[string]*models.CounterEntry),
		}
		s.guilds[guildID] = gb
	}
	return gb
}

// OpenSession starts a fresh session scope for a guild
func (s *service) OpenSession(ctx context.Context, input *OpenSessionInput) error {
	if input == nil || input.GuildID == "" || input.SessionID == 0 {
		return errors.New("input, guild ID and session ID cannot be empty")
	}

	gb := s.guild(input.GuildID)

	gb.sessionMu.Lock()
	defer gb.sessionMu.Unlock()

	if gb.sessionID != 0 {
		return ErrSessionAlreadyOpen
	}

	gb.sessionID = input.SessionID
	gb.session = make(map[string]*models.CounterEntry)
	return nil
}

// Apply folds one event into the open session scope and the weekly scope.
// The mutation is all-or-nothing: identity resolution happens before any
// counter is touched.
func (s *service) Apply(ctx context.Context, input *ApplyInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	event := input.Event
	if event.Handle == "" || event.Delta < 1 {
		return ErrInvalidEvent
	}

	identity, err := s.resolveIdentity(ctx, input.GuildID, event.Handle)
	if err != nil {
		return err
	}

	gb := s.guild(input.GuildID)

	gb.sessionMu.Lock()
	if gb.sessionID != 0 {
		applyToScope(gb.session, identity, &event)
	}
	gb.sessionMu.Unlock()

	gb.weekMu.Lock()
	if err := s.ensureWeekLoaded(ctx, gb, input.GuildID); err != nil {
		gb.weekMu.Unlock()
		return err
	}
	applyToScope(gb.week, identity, &event)
	// persisted with the lock held so writes land in mutation order
	err = s.counterRepo.SaveWeekly(ctx, &counterRepo.SaveWeeklyInput{
		Counters: copyWeekSet(input.GuildID, gb.week),
	})
	gb.weekMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to persist weekly counters: %w", err)
	}

	metrics.EventsConsumed.WithLabelValues(string(event.Kind)).Inc()
	return nil
}

// SessionSnapshot produces a ranked view of the open session scope
func (s *service) SessionSnapshot(ctx context.Context, input *SessionSnapshotInput) (*models.LeaderboardSnapshot, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	gb := s.guild(input.GuildID)

	gb.sessionMu.Lock()
	defer gb.sessionMu.Unlock()

	if gb.sessionID == 0 {
		return nil, ErrNoOpenSession
	}

	return &models.LeaderboardSnapshot{
		GuildID:    input.GuildID,
		Scope:      models.ScopeSession,
		SessionID:  gb.sessionID,
		TakenAt:    s.clock.Now(),
		TopGifters: s.rank(gb.session, giftScore),
		TopTappers: s.rank(gb.session, likeScore),
	}, nil
}

// WeeklySnapshot produces a ranked view of the weekly scope
func (s *service) WeeklySnapshot(ctx context.Context, input *WeeklySnapshotInput) (*models.LeaderboardSnapshot, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	gb := s.guild(input.GuildID)

	gb.weekMu.Lock()
	defer gb.weekMu.Unlock()

	if err := s.ensureWeekLoaded(ctx, gb, input.GuildID); err != nil {
		return nil, err
	}

	return &models.LeaderboardSnapshot{
		GuildID:    input.GuildID,
		Scope:      models.ScopeWeek,
		TakenAt:    s.clock.Now(),
		TopGifters: s.rank(gb.week, giftScore),
		TopTappers: s.rank(gb.week, likeScore),
	}, nil
}

// CloseSession discards the session scope. Events arriving afterwards only
// count toward the weekly scope.
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	gb := s.guild(input.GuildID)

	gb.sessionMu.Lock()
	defer gb.sessionMu.Unlock()

	if gb.sessionID == 0 {
		return ErrNoOpenSession
	}

	gb.sessionID = 0
	gb.session = make(map[string]*models.CounterEntry)
	return nil
}

// ResetWeekly swaps the weekly scope for an empty one and persists the swap
func (s *service) ResetWeekly(ctx context.Context, input *ResetWeeklyInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	gb := s.guild(input.GuildID)

	gb.weekMu.Lock()
	gb.week = make(map[string]*models.CounterEntry)
	gb.weekLoaded = true
	err := s.counterRepo.SaveWeekly(ctx, &counterRepo.SaveWeeklyInput{
		Counters: models.NewCounterSet(input.GuildID),
	})
	gb.weekMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to persist weekly reset: %w", err)
	}

	s.logger.WithField("guild_id", input.GuildID).Info("weekly counters reset")
	return nil
}

// MergeLink moves an unlinked handle's totals onto the newly linked member
// in both scopes. The merge is additive; the earlier first-contribution
// timestamp wins so the member keeps their tie-break position.
func (s *service) MergeLink(ctx context.Context, input *MergeLinkInput) error {
	if input == nil || input.GuildID == "" || input.Handle == "" || input.MemberID == "" {
		return errors.New("input, guild ID, handle and member ID cannot be empty")
	}

	handleKey := models.UnlinkedIdentity(input.Handle).Key()
	target := models.LinkedIdentity(input.MemberID, input.Handle)

	gb := s.guild(input.GuildID)

	gb.sessionMu.Lock()
	if gb.sessionID != 0 {
		mergeEntry(gb.session, handleKey, target)
	}
	gb.sessionMu.Unlock()

	gb.weekMu.Lock()
	if err := s.ensureWeekLoaded(ctx, gb, input.GuildID); err != nil {
		gb.weekMu.Unlock()
		return err
	}
	var saveErr error
	if mergeEntry(gb.week, handleKey, target) {
		saveErr = s.counterRepo.SaveWeekly(ctx, &counterRepo.SaveWeeklyInput{
			Counters: copyWeekSet(input.GuildID, gb.week),
		})
	}
	gb.weekMu.Unlock()
	if saveErr != nil {
		return fmt.Errorf("failed to persist merged counters: %w", saveErr)
	}

	s.logger.WithFields(logrus.Fields{
		"guild_id": input.GuildID,
		"handle":   input.Handle,
	}).Info("merged handle totals into linked member")
	return nil
}

func (s *service) resolveIdentity(ctx context.Context, guildID, handle string) (models.Identity, error) {
	output, err := s.linkRepo.Resolve(ctx, &linkRepo.ResolveInput{
		GuildID: guildID,
		Handle:  handle,
	})
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			return models.UnlinkedIdentity(handle), nil
		}
		return models.Identity{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	return models.LinkedIdentity(output.MemberID, handle), nil
}

// ensureWeekLoaded hydrates the weekly scope from persistence once per
// process. Callers must hold weekMu.
func (s *service) ensureWeekLoaded(ctx context.Context, gb *guildBoard, guildID string) error {
	if gb.weekLoaded {
		return nil
	}

	set, err := s.counterRepo.GetWeekly(ctx, &counterRepo.GetWeeklyInput{GuildID: guildID})
	if err != nil {
		return fmt.Errorf("failed to load weekly counters: %w", err)
	}

	gb.week = set.Entries
	gb.weekLoaded = true
	return nil
}

// applyToScope mutates a single identity's entry as one atomic unit.
// Callers must hold the scope lock.
func applyToScope(entries map[string]*models.CounterEntry, identity models.Identity, event *models.Event) {
	key := identity.Key()
	entry, ok := entries[key]
	if !ok {
		entry = &models.CounterEntry{Identity: identity}
		entries[key] = entry
	}

	switch event.Kind {
	case models.EventKindGift:
		entry.Gifts += event.Delta
		if entry.FirstGiftAt.IsZero() {
			entry.FirstGiftAt = event.Timestamp
		}
	case models.EventKindLike:
		entry.Likes += event.Delta
		if entry.FirstLikeAt.IsZero() {
			entry.FirstLikeAt = event.Timestamp
		}
	case models.EventKindComment:
		entry.Comments += event.Delta
	}
}

// mergeEntry folds the handle-keyed entry into the member-keyed one.
// Callers must hold the scope lock.
func mergeEntry(entries map[string]*models.CounterEntry, handleKey string, target models.Identity) bool {
	src, ok := entries[handleKey]
	if !ok {
		return false
	}
	delete(entries, handleKey)

	targetKey := target.Key()
	dst, ok := entries[targetKey]
	if !ok {
		src.Identity = target
		entries[targetKey] = src
		return true
	}

	dst.Gifts += src.Gifts
	dst.Likes += src.Likes
	dst.Comments += src.Comments
	dst.FirstGiftAt = earliest(dst.FirstGiftAt, src.FirstGiftAt)
	dst.FirstLikeAt = earliest(dst.FirstLikeAt, src.FirstLikeAt)
	return true
}

func earliest(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || a.Before(b) {
		return a
	}
	return b
}

func copyWeekSet(guildID string, entries map[string]*models.CounterEntry) *models.CounterSet {
	set := models.NewCounterSet(guildID)
	for key, entry := range entries {
		copied := *entry
		set.Entries[key] = &copied
	}
	return set
}

func giftScore(entry *models.CounterEntry) (int, time.Time) {
	return entry.Gifts, entry.FirstGiftAt
}

func likeScore(entry *models.CounterEntry) (int, time.Time) {
	return entry.Likes, entry.FirstLikeAt
}

// rank orders contributors by value descending, breaking ties by earliest
// first contribution and then by identity key, so repeated snapshots of the
// same counter state always agree
func (s *service) rank(entries map[string]*models.CounterEntry, score func(*models.CounterEntry) (int, time.Time)) []models.Entry {
	type row struct {
		key      string
		identity models.Identity
		value    int
		firstAt  time.Time
	}

	rows := make([]row, 0, len(entries))
	for key, entry := range entries {
		value, firstAt := score(entry)
		if value <= 0 {
			continue
		}
		rows = append(rows, row{key: key, identity: entry.Identity, value: value, firstAt: firstAt})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].value != rows[j].value {
			return rows[i].value > rows[j].value
		}
		if !rows[i].firstAt.Equal(rows[j].firstAt) {
			return rows[i].firstAt.Before(rows[j].firstAt)
		}
		return rows[i].key < rows[j].key
	})

	if len(rows) > s.maxEntries {
		rows = rows[:s.maxEntries]
	}

	ranked := make([]models.Entry, len(rows))
	for i, r := range rows {
		ranked[i] = models.Entry{
			Identity: r.identity,
			Value:    r.value,
			Rank:     i + 1,
		}
	}
	return ranked
}
