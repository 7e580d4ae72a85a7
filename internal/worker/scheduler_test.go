//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/worker"
	"furnished-lease-engine/tests/common/fakeuow"
	commandsmock "furnished-lease-engine/tests/mock/commands"

	"go.uber.org/mock/gomock"
)

func newScheduler(t *testing.T) (*worker.Scheduler, *commandsmock.MockInvoiceCommands, *commandsmock.MockReservationCommands, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(time.Date(2024, 3, 2, 2, 15, 0, 0, time.UTC))

	invoices := commandsmock.NewMockInvoiceCommands(ctrl)
	reservations := commandsmock.NewMockReservationCommands(ctrl)
	dispatcher := worker.NewDispatcher(fakeuow.New(),
		commandsmock.NewMockDocumentRenderer(ctrl),
		commandsmock.NewMockNotifier(ctrl),
		worker.DispatcherSettings{}, clk)

	s := worker.NewScheduler(dispatcher, invoices, reservations, config.OutboxConfig{
		Schedule:     "*/30 * * * * *",
		OverdueCron:  "0 15 2 * * *",
		ExpireCron:   "0 0 * * * *",
		ExpiryWindow: 25,
	}, clk)
	return s, invoices, reservations, clk
}

func TestScheduler_MarkOverdueInvoices(t *testing.T) {
	s, invoices, _, clk := newScheduler(t)

	invoices.EXPECT().MarkOverdue(gomock.Any(), clk.Now(), int32(25)).
		DoAndReturn(func(ctx context.Context, _ time.Time, _ int32) (int, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("scheduled job ran without a deadline")
			}
			return 3, nil
		})

	s.MarkOverdueInvoices()
}

func TestScheduler_ExpirePendingReservations(t *testing.T) {
	s, _, reservations, clk := newScheduler(t)

	reservations.EXPECT().ExpirePending(gomock.Any(), clk.Now(), int32(25)).Return(0, errors.New("db down"))

	// errors are logged, never propagated
	s.ExpirePendingReservations()
}

func TestScheduler_RecoversFromPanic(t *testing.T) {
	s, invoices, _, _ := newScheduler(t)

	invoices.EXPECT().MarkOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, int32) (int, error) {
			panic("boom")
		})

	s.MarkOverdueInvoices()
}

func TestScheduler_RetryOutboxWithEmptyTable(t *testing.T) {
	s, _, _, _ := newScheduler(t)
	s.RetryOutbox()
}

func TestScheduler_StartStop(t *testing.T) {
	s, _, _, _ := newScheduler(t)
	s.Start()
	s.Stop()
}
