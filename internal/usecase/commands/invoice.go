package commands

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/commands/invoice.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceCommands interface {
	MarkPaid(ctx context.Context, invoiceID uuid.UUID) (*rent.Invoice, error)
	// MarkOverdue flips awaiting invoices due before asOf and reports how many changed.
	MarkOverdue(ctx context.Context, asOf time.Time, limit int32) (int, error)
}

type invoiceUseCaseImpl struct {
	uow    shared.UnitOfWork
	kicker OutboxKicker
	clock  clock.Clock
}

func NewInvoiceUseCase(uow shared.UnitOfWork, kicker OutboxKicker, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{uow: uow, kicker: kicker, clock: clk}
}

func (uc *invoiceUseCaseImpl) MarkPaid(ctx context.Context, invoiceID uuid.UUID) (*rent.Invoice, error) {
	var inv *rent.Invoice
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inv, err = tx.Invoices().FindByIDForUpdate(ctx, tx.DB(), invoiceID)
		if err != nil {
			return mapReadErr(err, errs.ErrInvoiceNotFound)
		}
		if err := inv.MarkPaid(uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvoiceTransition)
		}
		return tx.Invoices().UpdateStatus(ctx, tx.DB(), inv)
	})
	if err != nil {
		return nil, markUnexpected(err)
	}
	return inv, nil
}

func (uc *invoiceUseCaseImpl) MarkOverdue(ctx context.Context, asOf time.Time, limit int32) (int, error) {
	marked := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		marked = 0
		now := uc.clock.Now()

		candidates, err := tx.Invoices().ListOverdueCandidates(ctx, tx.DB(), asOf, limit)
		if err != nil {
			return err
		}

		leases := make(map[uuid.UUID]*lease.Contract)
		for _, inv := range candidates {
			if err := inv.MarkOverdue(asOf); err != nil {
				slog.Warn("skipping invoice that cannot become overdue",
					"invoice_id", inv.ID(),
					"status", inv.Status(),
					"error", err.Error())
				continue
			}
			if err := tx.Invoices().UpdateStatus(ctx, tx.DB(), inv); err != nil {
				return err
			}

			contract, ok := leases[inv.LeaseID()]
			if !ok {
				contract, err = tx.Leases().FindByIDForUpdate(ctx, tx.DB(), inv.LeaseID())
				if err != nil {
					return mapReadErr(err, errs.ErrLeaseNotFound)
				}
				leases[inv.LeaseID()] = contract
			}

			err := enqueueNotify(ctx, tx, contract.Tenant().ID, shared.EventInvoiceOverdue, map[string]any{
				"invoiceId": inv.ID(),
				"leaseId":   inv.LeaseID(),
				"sequence":  inv.Sequence(),
				"dueDate":   inv.DueDate().Format(time.DateOnly),
				"amount":    inv.Amount(),
				"currency":  inv.Currency(),
			}, now)
			if err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, markUnexpected(err)
	}

	if marked > 0 {
		uc.kicker.Kick()
		slog.Info("rent invoices marked overdue", "count", marked, "as_of", asOf.Format(time.DateOnly))
	}
	return marked, nil
}
