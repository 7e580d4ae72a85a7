package bootstrap

import (
	"context"

	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/shared"
	"furnished-lease-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDispatcher,
		func(d *worker.Dispatcher) commands.OutboxKicker { return d },
		NewScheduler,
	),
	fx.Invoke(
		func(d *worker.Dispatcher, leases commands.LeaseCommands) {
			d.SetLeaseCommands(leases)
		},
		runWorkers,
	),
)

func NewDispatcher(
	uow shared.UnitOfWork,
	renderer commands.DocumentRenderer,
	notifier commands.Notifier,
	cfg config.Config,
	clk clock.Clock,
) *worker.Dispatcher {
	return worker.NewDispatcher(uow, renderer, notifier, worker.DispatcherSettings{
		BatchSize:   cfg.Outbox.BatchSize,
		MaxAttempts: cfg.Outbox.MaxAttempts,
	}, clk)
}

func NewScheduler(
	d *worker.Dispatcher,
	invoices commands.InvoiceCommands,
	reservations commands.ReservationCommands,
	cfg config.Config,
	clk clock.Clock,
) *worker.Scheduler {
	return worker.NewScheduler(d, invoices, reservations, cfg.Outbox, clk)
}

func runWorkers(lc fx.Lifecycle, d *worker.Dispatcher, s *worker.Scheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				d.Run(ctx)
			}()
			s.Start()
			// jobs committed before a restart
			d.Kick()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			s.Stop()
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
