package handoff

import (
	"context"
	"testing"
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	clockMocks "github.com/creatorsconnections/tokboard/internal/common/clock/mocks"
	uuidMocks "github.com/creatorsconnections/tokboard/internal/common/uuid/mocks"
	"github.com/creatorsconnections/tokboard/internal/models"
	snapshotRepo "github.com/creatorsconnections/tokboard/internal/repositories/snapshot"
	snapshotMocks "github.com/creatorsconnections/tokboard/internal/repositories/snapshot/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandOffServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockPublisher    *fakePublisher
	mockSnapshotRepo *snapshotMocks.MockRepository
	mockUUID         *uuidMocks.MockUUID
	mockClock        *clockMocks.MockClock
	ctx              context.Context

	testTime time.Time
}

// fakePublisher replays a scripted error sequence for Publish
type fakePublisher struct {
	publishErrs  []error
	publishCalls int
	announces    int
}

func (m *fakePublisher) Publish(ctx context.Context, input *PublishInput) error {
	m.publishCalls++
	if len(m.publishErrs) == 0 {
		return nil
	}
	err := m.publishErrs[0]
	m.publishErrs = m.publishErrs[1:]
	return err
}

func (m *fakePublisher) Announce(ctx context.Context, input *AnnounceInput) error {
	m.announces++
	return nil
}

type fakeRoleRotator struct {
	errs  []error
	calls []*SetRoleHolderInput
}

func (r *fakeRoleRotator) SetRoleHolder(ctx context.Context, input *SetRoleHolderInput) error {
	r.calls = append(r.calls, input)
	if len(r.errs) == 0 {
		return nil
	}
	err := r.errs[0]
	r.errs = r.errs[1:]
	return err
}

func (s *HandOffServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPublisher = &fakePublisher{}
	s.mockSnapshotRepo = snapshotMocks.NewMockRepository(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 8, 29, 21, 0, 0, 0, time.UTC)
}

func (s *HandOffServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandOffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HandOffServiceTestSuite))
}

func (s *HandOffServiceTestSuite) newService(rotator RoleRotator) Service {
	svc, err := New(&Config{
		Publisher:    s.mockPublisher,
		RoleRotator:  rotator,
		SnapshotRepo: s.mockSnapshotRepo,
		UUID:         s.mockUUID,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	return svc
}

// firedTimer returns a mock timer whose channel is already ready
func (s *HandOffServiceTestSuite) firedTimer() *clockMocks.MockTimer {
	ch := make(chan time.Time, 1)
	ch <- s.testTime
	timer := clockMocks.NewMockTimer(s.mockCtrl)
	timer.EXPECT().C().Return(ch).AnyTimes()
	timer.EXPECT().Stop().Return(false).AnyTimes()
	return timer
}

func snapshotWithTapper(identity models.Identity) *models.LeaderboardSnapshot {
	return &models.LeaderboardSnapshot{
		GuildID: "test-guild-id",
		Scope:   models.ScopeWeek,
		TopTappers: []models.Entry{
			{Identity: identity, Value: 42, Rank: 1},
		},
	}
}

func (s *HandOffServiceTestSuite) TestDeliverRotatesRole() {
	rotator := &fakeRoleRotator{}
	svc := s.newService(rotator)

	err := svc.Deliver(s.ctx, &DeliverInput{
		Snapshot: snapshotWithTapper(models.LinkedIdentity("member-1", "userA")),
		Role:     models.RoleSoreFinger,
	})
	s.Require().NoError(err)

	s.Equal(1, s.mockPublisher.publishCalls)
	s.Require().Len(rotator.calls, 1)
	s.Equal("member-1", rotator.calls[0].MemberID)
	s.Equal(models.RoleSoreFinger, rotator.calls[0].Role)
}

func (s *HandOffServiceTestSuite) TestDeliverRetriesThenSucceeds() {
	s.mockPublisher.publishErrs = []error{
		HandOffError("discord is down"),
		HandOffError("discord is still down"),
	}
	s.mockClock.EXPECT().NewTimer(time.Second).Return(s.firedTimer())
	s.mockClock.EXPECT().NewTimer(2 * time.Second).Return(s.firedTimer())

	rotator := &fakeRoleRotator{}
	svc := s.newService(rotator)

	err := svc.Deliver(s.ctx, &DeliverInput{
		Snapshot: snapshotWithTapper(models.LinkedIdentity("member-1", "userA")),
		Role:     models.RoleSoreFinger,
	})
	s.Require().NoError(err)
	s.Equal(3, s.mockPublisher.publishCalls)
	s.Len(rotator.calls, 1)
}

func (s *HandOffServiceTestSuite) TestDeliverParksAfterExhaustion() {
	s.mockPublisher.publishErrs = []error{
		HandOffError("down"),
		HandOffError("down"),
		HandOffError("down"),
	}
	s.mockClock.EXPECT().NewTimer(gomock.Any()).DoAndReturn(
		func(time.Duration) clock.Timer { return s.firedTimer() }).Times(2)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("parked-id")

	var parked *models.ParkedSnapshot
	s.mockSnapshotRepo.EXPECT().Park(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *snapshotRepo.ParkInput) error {
			parked = input.Parked
			return nil
		})

	rotator := &fakeRoleRotator{}
	svc := s.newService(rotator)

	snapshot := snapshotWithTapper(models.LinkedIdentity("member-1", "userA"))
	err := svc.Deliver(s.ctx, &DeliverInput{Snapshot: snapshot, Role: models.RoleSoreFinger})
	s.ErrorIs(err, ErrHandOffExhausted)

	s.Require().NotNil(parked)
	s.Equal("parked-id", parked.ID)
	s.Equal(snapshot, parked.Snapshot)
	s.Equal(s.testTime, parked.ParkedAt)
	s.Empty(rotator.calls)
}

func (s *HandOffServiceTestSuite) TestDeliverSkipsUnlinkedLeader() {
	rotator := &fakeRoleRotator{}
	svc := s.newService(rotator)

	err := svc.Deliver(s.ctx, &DeliverInput{
		Snapshot: snapshotWithTapper(models.UnlinkedIdentity("userA")),
		Role:     models.RoleSoreFinger,
	})
	s.Require().NoError(err)
	s.Empty(rotator.calls)
}

func (s *HandOffServiceTestSuite) TestDeliverEmptyBoardLeavesRole() {
	rotator := &fakeRoleRotator{}
	svc := s.newService(rotator)

	err := svc.Deliver(s.ctx, &DeliverInput{
		Snapshot: &models.LeaderboardSnapshot{GuildID: "test-guild-id", Scope: models.ScopeWeek},
		Role:     models.RoleSoreFinger,
	})
	s.Require().NoError(err)
	s.Empty(rotator.calls)
}

func (s *HandOffServiceTestSuite) TestRoleFailureDoesNotFailDelivery() {
	s.mockClock.EXPECT().NewTimer(gomock.Any()).DoAndReturn(
		func(time.Duration) clock.Timer { return s.firedTimer() }).Times(2)

	rotator := &fakeRoleRotator{errs: []error{
		HandOffError("missing permission"),
		HandOffError("missing permission"),
		HandOffError("missing permission"),
	}}
	svc := s.newService(rotator)

	err := svc.Deliver(s.ctx, &DeliverInput{
		Snapshot: snapshotWithTapper(models.LinkedIdentity("member-1", "userA")),
		Role:     models.RoleSoreFinger,
	})
	s.NoError(err)
	s.Len(rotator.calls, 3)
}

func (s *HandOffServiceTestSuite) TestDeliverWithoutRoleSkipsRotation() {
	rotator := &fakeRoleRotator{}
	svc := s.newService(rotator)

	err := svc.Deliver(s.ctx, &DeliverInput{
		Snapshot: snapshotWithTapper(models.LinkedIdentity("member-1", "userA")),
	})
	s.Require().NoError(err)
	s.Empty(rotator.calls)
}

func (s *HandOffServiceTestSuite) TestDeliverNilSnapshot() {
	svc := s.newService(&fakeRoleRotator{})

	err := svc.Deliver(s.ctx, &DeliverInput{})
	s.ErrorIs(err, ErrNilSnapshot)
}

func (s *HandOffServiceTestSuite) TestDeliverAbortsOnCanceledContext() {
	s.mockPublisher.publishErrs = []error{HandOffError("down")}

	stuck := make(chan time.Time)
	timer := clockMocks.NewMockTimer(s.mockCtrl)
	timer.EXPECT().C().Return(stuck)
	timer.EXPECT().Stop().Return(true)
	s.mockClock.EXPECT().NewTimer(time.Second).Return(timer)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("parked-id")
	s.mockSnapshotRepo.EXPECT().Park(gomock.Any(), gomock.Any()).Return(nil)

	svc := s.newService(&fakeRoleRotator{})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := svc.Deliver(ctx, &DeliverInput{
		Snapshot: snapshotWithTapper(models.LinkedIdentity("member-1", "userA")),
		Role:     models.RoleSoreFinger,
	})
	s.ErrorIs(err, ErrHandOffExhausted)
	s.Equal(1, s.mockPublisher.publishCalls)
}
