package worker

import (
	"context"
	"log/slog"
	"time"

	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the time-driven sweeps.
type Scheduler struct {
	cron         *cron.Cron
	dispatcher   *Dispatcher
	invoices     commands.InvoiceCommands
	reservations commands.ReservationCommands
	cfg          config.OutboxConfig
	clock        clock.Clock
}

func NewScheduler(
	dispatcher *Dispatcher,
	invoices commands.InvoiceCommands,
	reservations commands.ReservationCommands,
	cfg config.OutboxConfig,
	clk clock.Clock,
) *Scheduler {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		dispatcher:   dispatcher,
		invoices:     invoices,
		reservations: reservations,
		cfg:          cfg,
		clock:        clk,
	}
	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.RetryOutbox); err != nil {
		slog.Error("failed to register outbox retry job", "error", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.OverdueCron, s.MarkOverdueInvoices); err != nil {
		slog.Error("failed to register overdue invoice job", "error", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.ExpireCron, s.ExpirePendingReservations); err != nil {
		slog.Error("failed to register reservation expiry job", "error", err)
	}
}

func (s *Scheduler) Start() {
	slog.Info("starting scheduler", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) RetryOutbox() {
	s.runWithRecovery("outbox_retry", func(ctx context.Context) error {
		n, err := s.dispatcher.RunOnce(ctx)
		if n > 0 {
			slog.Info("outbox jobs delivered", "count", n)
		}
		return err
	})
}

func (s *Scheduler) MarkOverdueInvoices() {
	s.runWithRecovery("invoice_overdue", func(ctx context.Context) error {
		_, err := s.invoices.MarkOverdue(ctx, s.clock.Now(), s.cfg.ExpiryWindow)
		return err
	})
}

func (s *Scheduler) ExpirePendingReservations() {
	s.runWithRecovery("reservation_expiry", func(ctx context.Context) error {
		_, err := s.reservations.ExpirePending(ctx, s.clock.Now(), s.cfg.ExpiryWindow)
		return err
	})
}

func (s *Scheduler) runWithRecovery(name string, job func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("scheduled job panicked", "job", name, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := job(ctx); err != nil {
		slog.Error("scheduled job failed", "job", name, "error", err.Error())
	}
}
