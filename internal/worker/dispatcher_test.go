//go:build unit

package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/usecase/shared"
	"furnished-lease-engine/internal/worker"
	"furnished-lease-engine/tests/common/fakeuow"
	commandsmock "furnished-lease-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *fakeuow.UoW
	renderer *commandsmock.MockDocumentRenderer
	notifier *commandsmock.MockNotifier
	leases   *commandsmock.MockLeaseCommands
	clock    *clock.MockClock
	sut      *worker.Dispatcher
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = fakeuow.New()
	s.renderer = commandsmock.NewMockDocumentRenderer(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.leases = commandsmock.NewMockLeaseCommands(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	s.sut = worker.NewDispatcher(s.uow, s.renderer, s.notifier, worker.DispatcherSettings{BatchSize: 10, MaxAttempts: 3}, s.clock)
	s.sut.SetLeaseCommands(s.leases)
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) enqueue(kind shared.OutboxKind, topic string, payload any, runAt time.Time) uuid.UUID {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)
	job := shared.OutboxJob{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Payload:   raw,
		RunAt:     runAt,
		CreatedAt: runAt,
	}
	s.uow.EnqueueJob(job)
	return job.ID
}

func (s *DispatcherTestSuite) job(id uuid.UUID) shared.OutboxJob {
	for _, j := range s.uow.OutboxJobs() {
		if j.ID == id {
			return j
		}
	}
	s.FailNow("job not found", id.String())
	return shared.OutboxJob{}
}

func (s *DispatcherTestSuite) TestRunOnce_DeliversRenderAndNotify() {
	now := s.clock.Now()
	leaseID := uuid.New()
	userID := uuid.New()

	renderID := s.enqueue(shared.OutboxRenderLeaseDocument, "lease.document",
		shared.RenderLeaseDocumentPayload{LeaseID: leaseID}, now.Add(-time.Minute))
	notifyID := s.enqueue(shared.OutboxNotify, shared.EventLeaseCreated,
		shared.NotifyPayload{UserID: userID, Event: shared.EventLeaseCreated, Data: map[string]any{"leaseId": leaseID.String()}},
		now.Add(-time.Second))

	s.renderer.EXPECT().RenderLeaseDocument(gomock.Any(), leaseID).Return("leases/"+leaseID.String()+".pdf", nil)
	s.leases.EXPECT().AttachLeaseDocument(gomock.Any(), leaseID, "leases/"+leaseID.String()+".pdf").Return(nil)
	s.notifier.EXPECT().
		Notify(gomock.Any(), userID, shared.EventLeaseCreated, map[string]any{"leaseId": leaseID.String()}).
		Return(nil)

	n, err := s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(2, n)

	s.Equal(shared.OutboxDone, s.job(renderID).Status)
	s.Equal(shared.OutboxDone, s.job(notifyID).Status)
	s.Equal(int32(1), s.job(renderID).Attempts)
}

func (s *DispatcherTestSuite) TestRunOnce_SkipsJobsNotYetDue() {
	s.enqueue(shared.OutboxNotify, shared.EventInvoiceOverdue,
		shared.NotifyPayload{UserID: uuid.New(), Event: shared.EventInvoiceOverdue}, s.clock.Now().Add(time.Minute))

	n, err := s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Zero(n)
	s.Equal(shared.OutboxQueued, s.uow.OutboxJobs()[0].Status)
}

func (s *DispatcherTestSuite) TestRunOnce_FailureIsRescheduledWithBackoff() {
	now := s.clock.Now()
	userID := uuid.New()
	id := s.enqueue(shared.OutboxNotify, shared.EventReservationCancelled,
		shared.NotifyPayload{UserID: userID, Event: shared.EventReservationCancelled}, now)

	s.notifier.EXPECT().Notify(gomock.Any(), userID, shared.EventReservationCancelled, gomock.Any()).
		Return(errors.New("broker unreachable"))

	n, err := s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Zero(n)

	job := s.job(id)
	s.Equal(shared.OutboxQueued, job.Status)
	s.Equal(now.Add(worker.RetryDelay(1)), job.RunAt)
	s.Require().NotNil(job.LastError)
	s.Contains(*job.LastError, "broker unreachable")

	// not due again until the backoff elapses
	n, err = s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Zero(n)

	s.clock.Add(worker.RetryDelay(1))
	s.notifier.EXPECT().Notify(gomock.Any(), userID, shared.EventReservationCancelled, gomock.Any()).Return(nil)

	n, err = s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal(shared.OutboxDone, s.job(id).Status)
	s.Equal(int32(2), s.job(id).Attempts)
}

func (s *DispatcherTestSuite) TestRunOnce_DeadAfterMaxAttempts() {
	leaseID := uuid.New()
	id := s.enqueue(shared.OutboxRenderLeaseDocument, "lease.document",
		shared.RenderLeaseDocumentPayload{LeaseID: leaseID}, s.clock.Now())

	s.renderer.EXPECT().RenderLeaseDocument(gomock.Any(), leaseID).
		Return("", errors.New("renderer returned 500")).
		Times(3)

	for range 3 {
		_, err := s.sut.RunOnce(context.Background())
		s.Require().NoError(err)
		s.clock.Add(time.Hour)
	}

	job := s.job(id)
	s.Equal(shared.OutboxDead, job.Status)
	s.Equal(int32(3), job.Attempts)

	// dead jobs are never claimed again
	n, err := s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *DispatcherTestSuite) TestRunOnce_ReclaimsStaleRunningJob() {
	now := s.clock.Now()
	userID := uuid.New()
	payload, err := json.Marshal(shared.NotifyPayload{UserID: userID, Event: shared.EventLeaseCreated})
	s.Require().NoError(err)

	// claimed by a dispatcher that died an hour ago
	stale := shared.OutboxJob{
		ID: uuid.New(), Kind: shared.OutboxNotify, Topic: shared.EventLeaseCreated, Payload: payload,
		Status: shared.OutboxRunning, Attempts: 1, RunAt: now.Add(-time.Hour), CreatedAt: now.Add(-time.Hour),
	}
	// claimed a moment ago by a live dispatcher
	fresh := shared.OutboxJob{
		ID: uuid.New(), Kind: shared.OutboxNotify, Topic: shared.EventLeaseCreated, Payload: payload,
		Status: shared.OutboxRunning, Attempts: 1, RunAt: now.Add(-time.Minute), CreatedAt: now.Add(-time.Minute),
	}
	s.uow.EnqueueJob(stale)
	s.uow.EnqueueJob(fresh)

	s.notifier.EXPECT().Notify(gomock.Any(), userID, shared.EventLeaseCreated, gomock.Any()).Return(nil).Times(1)

	n, err := s.sut.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal(shared.OutboxDone, s.job(stale.ID).Status)
	s.Equal(int32(2), s.job(stale.ID).Attempts)
	s.Equal(shared.OutboxRunning, s.job(fresh.ID).Status)
}

func (s *DispatcherTestSuite) TestRunOnce_UnknownKindGoesDeadEventually() {
	id := s.enqueue(shared.OutboxKind("fax"), "legacy", map[string]string{}, s.clock.Now())

	for range 3 {
		_, err := s.sut.RunOnce(context.Background())
		s.Require().NoError(err)
		s.clock.Add(2 * time.Hour)
	}

	job := s.job(id)
	s.Equal(shared.OutboxDead, job.Status)
	s.Require().NotNil(job.LastError)
	s.Contains(*job.LastError, "unknown outbox job kind")
}

func (s *DispatcherTestSuite) TestRunOnce_ClaimFailure() {
	s.uow.FailOn("Outbox.ClaimDue", errors.New("connection refused"))

	_, err := s.sut.RunOnce(context.Background())
	s.Require().Error(err)
}

func (s *DispatcherTestSuite) TestRun_StopsOnCancel() {
	s.sut.Kick()
	s.sut.Kick()
	s.sut.Kick()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.sut.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("dispatcher did not stop on cancel")
	}
}

func TestRetryDelay(t *testing.T) {
	testCases := []struct {
		attempts int32
		want     time.Duration
	}{
		{0, 10 * time.Second},
		{1, 10 * time.Second},
		{2, 20 * time.Second},
		{3, 40 * time.Second},
		{9, 2560 * time.Second},
		{10, time.Hour},
		{40, time.Hour},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, worker.RetryDelay(tc.attempts), "attempts=%d", tc.attempts)
	}
	require.LessOrEqual(t, worker.RetryDelay(1000), time.Hour)
}
