package commands

//go:generate mockgen -source=lease.go -destination=../../../tests/mock/commands/lease.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "furnished-lease-engine/usecase/commands"

type LeaseResult struct {
	Lease    *lease.Contract
	Invoices []*rent.Invoice
	Payment  *payment.Payment
	// Created is false when the reservation had already been validated by an earlier delivery.
	Created   bool
	Cancelled []uuid.UUID
}

type LeaseCommands interface {
	ProcessPaymentConfirmation(ctx context.Context, reservationID uuid.UUID, assertion PaymentAssertion) (*LeaseResult, error)
	AttachLeaseDocument(ctx context.Context, leaseID uuid.UUID, documentRef string) error
}

type leaseUseCaseImpl struct {
	uow       shared.UnitOfWork
	confirmer PaymentConfirmer
	kicker    OutboxKicker
	policy    lease.DepositPolicy
	clock     clock.Clock
	tracer    trace.Tracer
}

func NewLeaseUseCase(
	uow shared.UnitOfWork,
	confirmer PaymentConfirmer,
	kicker OutboxKicker,
	policy lease.DepositPolicy,
	clk clock.Clock,
) LeaseCommands {
	return &leaseUseCaseImpl{
		uow:       uow,
		confirmer: confirmer,
		kicker:    kicker,
		policy:    policy,
		clock:     clk,
		tracer:    otel.Tracer(tracerName),
	}
}

func (uc *leaseUseCaseImpl) ProcessPaymentConfirmation(
	ctx context.Context,
	reservationID uuid.UUID,
	assertion PaymentAssertion,
) (result *LeaseResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "lease.ProcessPaymentConfirmation",
		trace.WithAttributes(
			attribute.String("reservation.id", reservationID.String()),
			attribute.String("payment.external_ref", assertion.ExternalRef),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	current, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrReservationNotFound)
	}

	switch current.Status() {
	case reservation.StatusValidated:
		return uc.existingLease(ctx, reservationID)
	case reservation.StatusCancelled, reservation.StatusExpired:
		return nil, errs.Mark(errs.Newf("reservation %s is %s", reservationID, current.Status()), errs.ErrInvalidTransition)
	}

	target, err := uc.uow.CommandReads().TargetByID(ctx, current.Target())
	if err != nil {
		return nil, markUnexpected(mapReadErr(err, errs.ErrTargetNotFound))
	}

	p, err := uc.confirmPayment(ctx, reservationID, uc.policy.DepositFor(*target), assertion)
	if err != nil {
		return nil, err
	}

	result, err = uc.validateAndMaterialize(ctx, current.Target(), reservationID, p)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidTransition) {
			slog.Warn("deposit completed for a reservation that can no longer be validated",
				"reservation_id", reservationID,
				"payment_id", p.ID(),
				"amount", p.Amount())
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.String("lease.id", result.Lease.ID().String()),
		attribute.Bool("lease.created", result.Created),
		attribute.Int("reservation.cancelled_competitors", len(result.Cancelled)),
	)

	if result.Created {
		uc.kicker.Kick()
		slog.Info("lease materialized",
			"reservation_id", reservationID,
			"lease_id", result.Lease.ID(),
			"invoices", len(result.Invoices),
			"cancelled_competitors", len(result.Cancelled))
	}

	return result, nil
}

func (uc *leaseUseCaseImpl) confirmPayment(ctx context.Context, reservationID uuid.UUID, depositDue int64, assertion PaymentAssertion) (*payment.Payment, error) {
	ctx, span := uc.tracer.Start(ctx, "payment.Confirm",
		trace.WithAttributes(attribute.Int64("payment.deposit_due", depositDue)))
	defer span.End()

	p, err := uc.confirmer.Confirm(ctx, reservationID, depositDue, assertion)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("payment.amount", p.Amount()))
	return p, nil
}

// validateAndMaterialize runs every write of the confirmation in one transaction,
// serialized per target by the calendar lock.
func (uc *leaseUseCaseImpl) validateAndMaterialize(
	ctx context.Context,
	target reservation.Target,
	reservationID uuid.UUID,
	p *payment.Payment,
) (*LeaseResult, error) {
	var result *LeaseResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		result = &LeaseResult{Payment: p}

		if err := tx.Calendar().LockTarget(ctx, tx.DB(), target); err != nil {
			return err
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return mapReadErr(err, errs.ErrReservationNotFound)
		}

		if res.IsValidated() {
			existing, err := loadLease(ctx, tx, reservationID)
			if err != nil {
				return err
			}
			existing.Payment = p
			result = existing
			return nil
		}
		if !res.IsPending() {
			return errs.Mark(errs.Newf("reservation %s is %s", reservationID, res.Status()), errs.ErrInvalidTransition)
		}

		candidates, err := tx.Calendar().ListActiveForTarget(ctx, tx.DB(), res.Target())
		if err != nil {
			return err
		}
		if taken := reservation.FindValidatedOverlap(res.Target(), res.Period(), res.ID(), candidates); taken != nil {
			return errs.Mark(
				errs.Newf("target %s already validated for %s by %s", res.Target(), taken.Period(), taken.ID()),
				errs.ErrInvalidTransition,
			)
		}

		if _, err := res.Validate(p, now); err != nil {
			return mapTransitionErr(err)
		}

		cancelled, err := uc.cancelCompetitors(ctx, tx, res, candidates, now)
		if err != nil {
			return err
		}
		result.Cancelled = cancelled

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return mapWriteErr(err)
		}

		contract, created, err := uc.materialize(ctx, tx, res, p, now)
		if err != nil {
			return err
		}
		result.Lease = contract
		result.Created = created

		if !created {
			invoices, err := tx.Invoices().ListByLease(ctx, tx.DB(), contract.ID())
			if err != nil {
				return err
			}
			result.Invoices = invoices
			return nil
		}

		invoices, err := rent.GenerateSchedule(contract, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Invoices().InsertBatch(ctx, tx.DB(), invoices); err != nil {
			return err
		}
		result.Invoices = invoices

		if err := enqueueRender(ctx, tx, contract.ID(), now); err != nil {
			return err
		}
		return enqueueNotify(ctx, tx, contract.Tenant().ID, shared.EventLeaseCreated, map[string]any{
			"leaseId":       contract.ID(),
			"reservationId": res.ID(),
			"startDate":     contract.StartDate().Format(time.DateOnly),
			"endDate":       contract.EndDate().Format(time.DateOnly),
			"monthlyRent":   contract.MonthlyRent(),
			"currency":      contract.Currency(),
		}, now)
	})
	if err != nil {
		return nil, markUnexpected(err)
	}
	return result, nil
}

// cancelCompetitors cancels every pending reservation that overlaps res on the same target.
func (uc *leaseUseCaseImpl) cancelCompetitors(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	candidates []*reservation.Reservation,
	now time.Time,
) ([]uuid.UUID, error) {
	ids := reservation.ResolveConflicts(res.Target(), res.Period(), res.ID(), candidates)
	if len(ids) == 0 {
		return ids, nil
	}

	byID := make(map[uuid.UUID]*reservation.Reservation, len(candidates))
	for _, c := range candidates {
		byID[c.ID()] = c
	}

	for _, id := range ids {
		competitor := byID[id]
		if err := competitor.Cancel(now); err != nil {
			return nil, mapTransitionErr(err)
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), competitor); err != nil {
			return nil, mapWriteErr(err)
		}
		err := enqueueNotify(ctx, tx, competitor.RequesterID(), shared.EventReservationCancelled, map[string]any{
			"reservationId": competitor.ID(),
			"reason":        "dates taken by another reservation",
			"startDate":     competitor.Period().Start().Format(time.DateOnly),
			"endDate":       competitor.Period().End().Format(time.DateOnly),
		}, now)
		if err != nil {
			return nil, err
		}
	}

	slog.Info("cancelled competing reservations",
		"reservation_id", res.ID(),
		"target", res.Target().String(),
		"count", len(ids))
	return ids, nil
}

func (uc *leaseUseCaseImpl) materialize(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	p *payment.Payment,
	now time.Time,
) (*lease.Contract, bool, error) {
	tenant, err := tx.Reads().TenantByID(ctx, res.RequesterID())
	if err != nil {
		return nil, false, mapReadErr(err, errs.ErrTargetNotFound)
	}
	target, err := tx.Reads().TargetByID(ctx, res.Target())
	if err != nil {
		return nil, false, mapReadErr(err, errs.ErrTargetNotFound)
	}

	contract, err := lease.Materialize(
		res,
		p,
		lease.TenantSnapshot{ID: tenant.ID, Name: tenant.Name, Email: tenant.Email},
		*target,
		uc.policy,
		now,
	)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDomainValidation)
	}

	return tx.Leases().CreateIfAbsent(ctx, tx.DB(), contract)
}

func (uc *leaseUseCaseImpl) existingLease(ctx context.Context, reservationID uuid.UUID) (*LeaseResult, error) {
	var result *LeaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		result, lerr = loadLease(ctx, tx, reservationID)
		return lerr
	})
	if err != nil {
		return nil, markUnexpected(err)
	}
	return result, nil
}

func loadLease(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) (*LeaseResult, error) {
	contract, err := tx.Leases().FindByReservationID(ctx, tx.DB(), reservationID)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrLeaseNotFound)
	}
	invoices, err := tx.Invoices().ListByLease(ctx, tx.DB(), contract.ID())
	if err != nil {
		return nil, err
	}
	return &LeaseResult{Lease: contract, Invoices: invoices}, nil
}

func (uc *leaseUseCaseImpl) AttachLeaseDocument(ctx context.Context, leaseID uuid.UUID, documentRef string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		contract, err := tx.Leases().FindByIDForUpdate(ctx, tx.DB(), leaseID)
		if err != nil {
			return mapReadErr(err, errs.ErrLeaseNotFound)
		}

		changed, err := contract.AttachDocument(documentRef, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if !changed {
			return nil
		}
		return tx.Leases().SetDocumentRef(ctx, tx.DB(), contract)
	})
	if err != nil {
		return markUnexpected(err)
	}
	return nil
}

var outcomeErrors = []error{
	errs.ErrInvalidTransition,
	errs.ErrPaymentRejected,
	errs.ErrGatewayUnavailable,
	errs.ErrReservationNotFound,
	errs.ErrLeaseNotFound,
	errs.ErrTargetNotFound,
	errs.ErrInvoiceNotFound,
	errs.ErrInvoiceTransition,
	errs.ErrDomainValidation,
}

// markUnexpected tags anything that is not a known outcome as a database failure.
func markUnexpected(err error) error {
	for _, known := range outcomeErrors {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapReadErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return err
}

// mapWriteErr turns a lost race on a reservation row into a transition error.
func mapWriteErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return err
}

func mapTransitionErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrInvalidTransition), errs.Is(err, reservation.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errs.Is(err, reservation.ErrPaymentNotCompleted), errs.Is(err, reservation.ErrPaymentMismatch):
		return errs.Mark(err, errs.ErrPaymentRejected)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
