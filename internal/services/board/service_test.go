package board

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/creatorsconnections/tokboard/internal/common/clock/mocks"
	"github.com/creatorsconnections/tokboard/internal/models"
	counterRepo "github.com/creatorsconnections/tokboard/internal/repositories/counter"
	counterMocks "github.com/creatorsconnections/tokboard/internal/repositories/counter/mocks"
	linkRepo "github.com/creatorsconnections/tokboard/internal/repositories/linkmap"
	linkMocks "github.com/creatorsconnections/tokboard/internal/repositories/linkmap/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BoardServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockLinkRepo    *linkMocks.MockRepository
	mockCounterRepo *counterMocks.MockRepository
	mockClock       *clockMocks.MockClock
	boardService    Service
	ctx             context.Context

	testTime    time.Time
	testGuildID string
}

func (s *BoardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLinkRepo = linkMocks.NewMockRepository(s.mockCtrl)
	s.mockCounterRepo = counterMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"

	// default collaborator behavior; individual tests tighten as needed
	s.mockLinkRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, linkRepo.ErrLinkNotFound).AnyTimes()
	s.mockCounterRepo.EXPECT().GetWeekly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *counterRepo.GetWeeklyInput) (*models.CounterSet, error) {
			return models.NewCounterSet(input.GuildID), nil
		}).AnyTimes()
	s.mockCounterRepo.EXPECT().SaveWeekly(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		LinkRepo:    s.mockLinkRepo,
		CounterRepo: s.mockCounterRepo,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.boardService = svc
}

func (s *BoardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}

func (s *BoardServiceTestSuite) openSession() {
	err := s.boardService.OpenSession(s.ctx, &OpenSessionInput{
		GuildID:   s.testGuildID,
		SessionID: 1,
	})
	s.Require().NoError(err)
}

func (s *BoardServiceTestSuite) apply(kind models.EventKind, handle string, delta int, at time.Time) {
	err := s.boardService.Apply(s.ctx, &ApplyInput{
		GuildID: s.testGuildID,
		Event: models.Event{
			Kind:      kind,
			Handle:    handle,
			Delta:     delta,
			Timestamp: at,
		},
	})
	s.Require().NoError(err)
}

func (s *BoardServiceTestSuite) TestSessionTotals() {
	s.openSession()

	s.apply(models.EventKindGift, "userA", 5, s.testTime)
	s.apply(models.EventKindLike, "userB", 3, s.testTime.Add(time.Second))
	s.apply(models.EventKindGift, "userA", 2, s.testTime.Add(2*time.Second))
	s.apply(models.EventKindLike, "userA", 1, s.testTime.Add(3*time.Second))

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	s.Require().Len(snapshot.TopGifters, 1)
	s.Equal("handle:userA", snapshot.TopGifters[0].Identity.Key())
	s.Equal(7, snapshot.TopGifters[0].Value)
	s.Equal(1, snapshot.TopGifters[0].Rank)

	s.Require().Len(snapshot.TopTappers, 2)
	s.Equal("handle:userB", snapshot.TopTappers[0].Identity.Key())
	s.Equal(3, snapshot.TopTappers[0].Value)
	s.Equal("handle:userA", snapshot.TopTappers[1].Identity.Key())
	s.Equal(1, snapshot.TopTappers[1].Value)

	s.Equal(int64(1), snapshot.SessionID)
	s.Equal(models.ScopeSession, snapshot.Scope)
	s.Equal(s.testTime, snapshot.TakenAt)
}

func (s *BoardServiceTestSuite) TestSnapshotIsPure() {
	s.openSession()
	s.apply(models.EventKindGift, "userA", 5, s.testTime)
	s.apply(models.EventKindLike, "userB", 2, s.testTime)

	first, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	second, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *BoardServiceTestSuite) TestTieBreakByFirstContribution() {
	s.openSession()

	// same totals; userLate reaches it first
	s.apply(models.EventKindGift, "userLate", 5, s.testTime)
	s.apply(models.EventKindGift, "userEarly", 5, s.testTime.Add(time.Second))

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	s.Require().Len(snapshot.TopGifters, 2)
	s.Equal("handle:userLate", snapshot.TopGifters[0].Identity.Key())
	s.Equal("handle:userEarly", snapshot.TopGifters[1].Identity.Key())
}

func (s *BoardServiceTestSuite) TestTieBreakByIdentityKey() {
	s.openSession()

	// identical value and first-contribution timestamp
	s.apply(models.EventKindGift, "zed", 5, s.testTime)
	s.apply(models.EventKindGift, "abe", 5, s.testTime)

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	s.Require().Len(snapshot.TopGifters, 2)
	s.Equal("handle:abe", snapshot.TopGifters[0].Identity.Key())
	s.Equal("handle:zed", snapshot.TopGifters[1].Identity.Key())
}

func (s *BoardServiceTestSuite) TestBoardsTruncateToTopTen() {
	s.openSession()

	for i := 0; i < 15; i++ {
		s.apply(models.EventKindGift, string(rune('a'+i)), 100-i, s.testTime.Add(time.Duration(i)*time.Second))
	}

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	s.Len(snapshot.TopGifters, 10)
	s.Equal(100, snapshot.TopGifters[0].Value)
	s.Equal(10, snapshot.TopGifters[9].Rank)
	s.Empty(snapshot.TopTappers)
}

func (s *BoardServiceTestSuite) TestCloseSessionDiscardsCounters() {
	s.openSession()
	s.apply(models.EventKindGift, "userA", 5, s.testTime)

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	err = s.boardService.CloseSession(s.ctx, &CloseSessionInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	// a late event must not alter the already-taken snapshot
	s.apply(models.EventKindGift, "userA", 50, s.testTime.Add(time.Minute))
	s.Require().Len(snapshot.TopGifters, 1)
	s.Equal(5, snapshot.TopGifters[0].Value)

	_, err = s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrNoOpenSession)
}

func (s *BoardServiceTestSuite) TestApplyWithoutSessionCountsWeeklyOnly() {
	s.apply(models.EventKindLike, "userA", 4, s.testTime)

	weekly, err := s.boardService.WeeklySnapshot(s.ctx, &WeeklySnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Require().Len(weekly.TopTappers, 1)
	s.Equal(4, weekly.TopTappers[0].Value)

	_, err = s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrNoOpenSession)
}

func (s *BoardServiceTestSuite) TestWeeklySurvivesSessionClose() {
	s.openSession()
	s.apply(models.EventKindGift, "userA", 5, s.testTime)

	s.Require().NoError(s.boardService.CloseSession(s.ctx, &CloseSessionInput{GuildID: s.testGuildID}))

	weekly, err := s.boardService.WeeklySnapshot(s.ctx, &WeeklySnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Require().Len(weekly.TopGifters, 1)
	s.Equal(5, weekly.TopGifters[0].Value)
}

func (s *BoardServiceTestSuite) TestResetWeekly() {
	s.apply(models.EventKindGift, "userA", 5, s.testTime)

	err := s.boardService.ResetWeekly(s.ctx, &ResetWeeklyInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	weekly, err := s.boardService.WeeklySnapshot(s.ctx, &WeeklySnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Empty(weekly.TopGifters)
	s.Empty(weekly.TopTappers)
}

func (s *BoardServiceTestSuite) TestResetWeeklySurvivesConcurrentApply() {
	ctrl := gomock.NewController(s.T())
	mockLinkRepo := linkMocks.NewMockRepository(ctrl)
	mockCounterRepo := counterMocks.NewMockRepository(ctrl)
	mockClock := clockMocks.NewMockClock(ctrl)

	mockLinkRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, linkRepo.ErrLinkNotFound).AnyTimes()
	mockCounterRepo.EXPECT().GetWeekly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *counterRepo.GetWeeklyInput) (*models.CounterSet, error) {
			return models.NewCounterSet(input.GuildID), nil
		}).AnyTimes()
	mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// the repository parks the apply's write so the reset can race it
	applySaving := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var calls int
	var persisted *models.CounterSet
	mockCounterRepo.EXPECT().SaveWeekly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *counterRepo.SaveWeeklyInput) error {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				close(applySaving)
				<-release
			}
			mu.Lock()
			persisted = input.Counters
			mu.Unlock()
			return nil
		}).Times(2)

	svc, err := New(&Config{
		LinkRepo:    mockLinkRepo,
		CounterRepo: mockCounterRepo,
		Clock:       mockClock,
	})
	s.Require().NoError(err)

	applyDone := make(chan error, 1)
	go func() {
		applyDone <- svc.Apply(s.ctx, &ApplyInput{
			GuildID: s.testGuildID,
			Event: models.Event{
				Kind:      models.EventKindGift,
				Handle:    "userA",
				Delta:     5,
				Timestamp: s.testTime,
			},
		})
	}()
	<-applySaving

	resetDone := make(chan error, 1)
	go func() {
		resetDone <- svc.ResetWeekly(s.ctx, &ResetWeeklyInput{GuildID: s.testGuildID})
	}()
	close(release)

	s.Require().NoError(<-applyDone)
	s.Require().NoError(<-resetDone)

	// the reset's empty set must be the last write to land
	mu.Lock()
	defer mu.Unlock()
	s.Require().NotNil(persisted)
	s.Empty(persisted.Entries)
}

func (s *BoardServiceTestSuite) TestOpenSessionTwice() {
	s.openSession()

	err := s.boardService.OpenSession(s.ctx, &OpenSessionInput{
		GuildID:   s.testGuildID,
		SessionID: 2,
	})
	s.ErrorIs(err, ErrSessionAlreadyOpen)
}

func (s *BoardServiceTestSuite) TestMergeLink() {
	s.openSession()
	s.apply(models.EventKindGift, "userA", 5, s.testTime)
	s.apply(models.EventKindLike, "userA", 2, s.testTime)

	err := s.boardService.MergeLink(s.ctx, &MergeLinkInput{
		GuildID:  s.testGuildID,
		Handle:   "userA",
		MemberID: "member-1",
	})
	s.Require().NoError(err)

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	s.Require().Len(snapshot.TopGifters, 1)
	s.Equal("member:member-1", snapshot.TopGifters[0].Identity.Key())
	s.Equal(5, snapshot.TopGifters[0].Value)
	s.Require().Len(snapshot.TopTappers, 1)
	s.Equal(2, snapshot.TopTappers[0].Value)
}

func (s *BoardServiceTestSuite) TestMergeLinkIsNoOpWithoutHandleEntry() {
	s.openSession()
	s.apply(models.EventKindGift, "someoneElse", 5, s.testTime)

	err := s.boardService.MergeLink(s.ctx, &MergeLinkInput{
		GuildID:  s.testGuildID,
		Handle:   "neverSeen",
		MemberID: "member-1",
	})
	s.Require().NoError(err)

	snapshot, err := s.boardService.SessionSnapshot(s.ctx, &SessionSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Require().Len(snapshot.TopGifters, 1)
	s.Equal("handle:someoneElse", snapshot.TopGifters[0].Identity.Key())
}

func (s *BoardServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{CounterRepo: s.mockCounterRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilLinkRepo)

	_, err = New(&Config{LinkRepo: s.mockLinkRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilCounterRepo)
}
