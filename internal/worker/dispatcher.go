package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/shared"
)

const (
	retryBase = 10 * time.Second
	retryMax  = time.Hour
	// a running job untouched for this long belongs to a dispatcher that died mid-batch
	staleAfter = 10 * time.Minute
)

var errUnknownJobKind = errs.New("unknown outbox job kind")

type DispatcherSettings struct {
	BatchSize   int32
	MaxAttempts int32
}

// Dispatcher delivers committed outbox jobs. Failures stay in the table and are retried with backoff.
type Dispatcher struct {
	uow      shared.UnitOfWork
	leases   commands.LeaseCommands
	renderer commands.DocumentRenderer
	notifier commands.Notifier
	settings DispatcherSettings
	clock    clock.Clock
	kick     chan struct{}
}

func NewDispatcher(
	uow shared.UnitOfWork,
	renderer commands.DocumentRenderer,
	notifier commands.Notifier,
	settings DispatcherSettings,
	clk clock.Clock,
) *Dispatcher {
	if settings.BatchSize <= 0 {
		settings.BatchSize = 50
	}
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = 8
	}
	return &Dispatcher{
		uow:      uow,
		renderer: renderer,
		notifier: notifier,
		settings: settings,
		clock:    clk,
		kick:     make(chan struct{}, 1),
	}
}

// SetLeaseCommands closes the cycle between the lease use case, which kicks the dispatcher,
// and the render job, which attaches documents through it.
func (d *Dispatcher) SetLeaseCommands(leases commands.LeaseCommands) {
	d.leases = leases
}

// Kick requests a dispatch pass. It never blocks; pending kicks coalesce.
func (d *Dispatcher) Kick() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Run dispatches on every kick until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.kick:
			if _, err := d.RunOnce(ctx); err != nil {
				slog.Error("outbox dispatch failed", "error", err.Error())
			}
		}
	}
}

// RunOnce claims one batch of due jobs and delivers them. It returns how many were delivered.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	var jobs []shared.OutboxJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		var cerr error
		jobs, cerr = tx.Outbox().ClaimDue(ctx, tx.DB(), now, now.Add(-staleAfter), d.settings.BatchSize)
		return cerr
	})
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}
		derr := d.deliver(ctx, job)
		if err := d.record(ctx, job, derr); err != nil {
			slog.Error("failed to record outbox job result", "job_id", job.ID, "error", err.Error())
			continue
		}
		if derr == nil {
			delivered++
		}
	}
	return delivered, nil
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.OutboxJob) error {
	switch job.Kind {
	case shared.OutboxRenderLeaseDocument:
		var p shared.RenderLeaseDocumentPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return errs.Wrap(err, "decode render payload")
		}
		ref, err := d.renderer.RenderLeaseDocument(ctx, p.LeaseID)
		if err != nil {
			return err
		}
		if d.leases == nil {
			return errs.New("lease commands not wired into dispatcher")
		}
		return d.leases.AttachLeaseDocument(ctx, p.LeaseID, ref)

	case shared.OutboxNotify:
		var p shared.NotifyPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return errs.Wrap(err, "decode notify payload")
		}
		return d.notifier.Notify(ctx, p.UserID, p.Event, p.Data)

	default:
		return errs.Wrapf(errUnknownJobKind, "%q", job.Kind)
	}
}

func (d *Dispatcher) record(ctx context.Context, job shared.OutboxJob, deliveryErr error) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		if deliveryErr == nil {
			return tx.Outbox().MarkDone(ctx, tx.DB(), job.ID, now)
		}

		if job.Attempts >= d.settings.MaxAttempts {
			slog.Error("outbox job exhausted its attempts",
				"job_id", job.ID,
				"kind", job.Kind,
				"attempts", job.Attempts,
				"error", deliveryErr.Error())
			return tx.Outbox().Reschedule(ctx, tx.DB(), job.ID, shared.OutboxDead, now, deliveryErr.Error(), now)
		}

		runAt := now.Add(RetryDelay(job.Attempts))
		slog.Warn("outbox job failed, will retry",
			"job_id", job.ID,
			"kind", job.Kind,
			"attempts", job.Attempts,
			"retry_at", runAt,
			"error", deliveryErr.Error())
		return tx.Outbox().Reschedule(ctx, tx.DB(), job.ID, shared.OutboxQueued, runAt, deliveryErr.Error(), now)
	})
}

// RetryDelay doubles from retryBase per attempt, capped at retryMax.
func RetryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := retryBase
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= retryMax {
			return retryMax
		}
	}
	return d
}
