package weekly

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/creatorsconnections/tokboard/internal/common/clock/mocks"
	"github.com/creatorsconnections/tokboard/internal/models"
	counterRepo "github.com/creatorsconnections/tokboard/internal/repositories/counter"
	counterMocks "github.com/creatorsconnections/tokboard/internal/repositories/counter/mocks"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	guildconfigMocks "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig/mocks"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	boardMocks "github.com/creatorsconnections/tokboard/internal/services/board/mocks"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	handoffMocks "github.com/creatorsconnections/tokboard/internal/services/handoff/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WeeklyServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockConfigRepo  *guildconfigMocks.MockRepository
	mockCounterRepo *counterMocks.MockRepository
	mockBoard       *boardMocks.MockService
	mockHandOff     *handoffMocks.MockService
	mockClock       *clockMocks.MockClock
	weeklyService   Service
	ctx             context.Context

	testGuildID string
}

func (s *WeeklyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockConfigRepo = guildconfigMocks.NewMockRepository(s.mockCtrl)
	s.mockCounterRepo = counterMocks.NewMockRepository(s.mockCtrl)
	s.mockBoard = boardMocks.NewMockService(s.mockCtrl)
	s.mockHandOff = handoffMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testGuildID = "test-guild-id"

	svc, err := New(&Config{
		GuildConfigRepo: s.mockConfigRepo,
		CounterRepo:     s.mockCounterRepo,
		Board:           s.mockBoard,
		HandOff:         s.mockHandOff,
		Clock:           s.mockClock,
	})
	s.Require().NoError(err)
	s.weeklyService = svc
}

func (s *WeeklyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWeeklyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WeeklyServiceTestSuite))
}

func (s *WeeklyServiceTestSuite) guildConfig() *models.GuildConfig {
	return &models.GuildConfig{
		GuildID:       s.testGuildID,
		CreatorHandle: "creator",
		ChannelID:     "channel-1",
		Timezone:      "UTC",
		WeeklyDay:     6,
		WeeklyHour:    19,
	}
}

func (s *WeeklyServiceTestSuite) expectList(configs ...*models.GuildConfig) {
	s.mockConfigRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(
		&guildconfigRepo.ListOutput{Configs: configs}, nil)
}

func (s *WeeklyServiceTestSuite) expectRollover(marker string) {
	snapshot := &models.LeaderboardSnapshot{GuildID: s.testGuildID, Scope: models.ScopeWeek}
	s.mockBoard.EXPECT().WeeklySnapshot(gomock.Any(), &board.WeeklySnapshotInput{GuildID: s.testGuildID}).Return(snapshot, nil)
	s.mockHandOff.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *handoff.DeliverInput) error {
			s.Equal(models.RoleSoreFinger, input.Role)
			s.Equal(snapshot, input.Snapshot)
			return nil
		})
	s.mockBoard.EXPECT().ResetWeekly(gomock.Any(), &board.ResetWeeklyInput{GuildID: s.testGuildID}).Return(nil)
	s.mockCounterRepo.EXPECT().SetLastReset(gomock.Any(), &counterRepo.SetLastResetInput{
		GuildID:  s.testGuildID,
		Boundary: marker,
	}).Return(nil)
}

func (s *WeeklyServiceTestSuite) TestSweepFiresAfterBoundary() {
	// Saturday 20:00, one hour past the Saturday 19:00 boundary
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC))

	s.expectList(s.guildConfig())
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(&counterRepo.GetLastResetOutput{}, nil)
	s.expectRollover("2026-08-29T19:00:00Z")

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestSweepIsIdempotent() {
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC))

	s.expectList(s.guildConfig())
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(
		&counterRepo.GetLastResetOutput{Boundary: "2026-08-29T19:00:00Z"}, nil)

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestSweepCatchesUpAfterDowntime() {
	// Monday, with the last reset recorded two boundaries ago
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	s.expectList(s.guildConfig())
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(
		&counterRepo.GetLastResetOutput{Boundary: "2026-08-22T19:00:00Z"}, nil)
	s.expectRollover("2026-08-29T19:00:00Z")

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestSweepBeforeBoundary() {
	// Saturday 18:00, one hour before this week's boundary
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC))

	s.expectList(s.guildConfig())
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(
		&counterRepo.GetLastResetOutput{Boundary: "2026-08-22T19:00:00Z"}, nil)

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestSweepHonorsTimezone() {
	cfg := s.guildConfig()
	cfg.Timezone = "America/New_York"

	// Sunday 01:00 UTC is Saturday 21:00 in New York, past the boundary
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC))

	s.expectList(cfg)
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(&counterRepo.GetLastResetOutput{}, nil)
	// Saturday 19:00 EDT is 23:00 UTC
	s.expectRollover("2026-08-29T23:00:00Z")

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestSweepDefaultsBoundary() {
	cfg := s.guildConfig()
	cfg.Timezone = ""
	cfg.WeeklyDay = 0
	cfg.WeeklyHour = 0

	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC))

	s.expectList(cfg)
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(&counterRepo.GetLastResetOutput{}, nil)
	s.expectRollover("2026-08-29T19:00:00Z")

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestSweepResetsEvenWhenHandOffFails() {
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC))

	s.expectList(s.guildConfig())
	s.mockCounterRepo.EXPECT().GetLastReset(gomock.Any(), gomock.Any()).Return(&counterRepo.GetLastResetOutput{}, nil)
	s.mockBoard.EXPECT().WeeklySnapshot(gomock.Any(), gomock.Any()).Return(
		&models.LeaderboardSnapshot{GuildID: s.testGuildID, Scope: models.ScopeWeek}, nil)
	s.mockHandOff.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(handoff.ErrHandOffExhausted)
	s.mockBoard.EXPECT().ResetWeekly(gomock.Any(), gomock.Any()).Return(nil)
	s.mockCounterRepo.EXPECT().SetLastReset(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.weeklyService.Sweep(s.ctx))
}

func (s *WeeklyServiceTestSuite) TestRunSweepsUntilCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)

	swept := make(chan struct{})
	s.mockConfigRepo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *guildconfigRepo.ListInput) (*guildconfigRepo.ListOutput, error) {
			close(swept)
			return &guildconfigRepo.ListOutput{}, nil
		})
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC))

	stuck := make(chan time.Time)
	timer := clockMocks.NewMockTimer(s.mockCtrl)
	timer.EXPECT().C().Return(stuck)
	timer.EXPECT().Stop().Return(true)
	s.mockClock.EXPECT().NewTimer(DefaultPollInterval).Return(timer)

	done := make(chan error, 1)
	go func() { done <- s.weeklyService.Run(ctx) }()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for sweep")
	}

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for Run to return")
	}
}
