package reservation

import (
	"errors"
	"time"

	"furnished-lease-engine/internal/domain/payment"

	"github.com/google/uuid"
)

var (
	ErrInvalidTarget       = errors.New("reservation target must be exactly one of property or unit")
	ErrInvalidDateRange    = errors.New("reservation start must be before end")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidTransition   = errors.New("invalid reservation transition")
	ErrPaymentNotCompleted = errors.New("a completed deposit payment is required")
	ErrPaymentMismatch     = errors.New("payment does not belong to reservation")
)

type Reservation struct {
	id          uuid.UUID
	requesterID uuid.UUID
	target      Target
	period      DateRange
	status      Status
	cautionPaid bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation builds a pending reservation. The booking flow that calls it lives outside the lease engine.
func NewReservation(requesterID uuid.UUID, target Target, period DateRange, now time.Time) (*Reservation, error) {
	if target.IsZero() {
		return nil, ErrInvalidTarget
	}
	return &Reservation{
		id:          uuid.New(),
		requesterID: requesterID,
		target:      target,
		period:      period,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, requesterID uuid.UUID,
	target Target,
	period DateRange,
	status Status,
	cautionPaid bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		requesterID: requesterID,
		target:      target,
		period:      period,
		status:      status,
		cautionPaid: cautionPaid,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Validate moves a pending reservation to validated on a completed deposit.
// It reports changed=false without error when the reservation is already validated,
// so duplicate webhook deliveries are harmless.
func (r *Reservation) Validate(p *payment.Payment, now time.Time) (changed bool, err error) {
	if r.status == StatusValidated {
		return false, nil
	}
	if err := ValidateTransition(r.status, StatusValidated); err != nil {
		return false, err
	}
	if p == nil || !p.IsCompleted() || p.Kind() != payment.KindDeposit {
		return false, ErrPaymentNotCompleted
	}
	if p.ReservationID() != r.id {
		return false, ErrPaymentMismatch
	}
	r.status = StatusValidated
	r.cautionPaid = true
	r.updatedAt = now
	return true, nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if err := ValidateTransition(r.status, StatusCancelled); err != nil {
		return err
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) Expire(now time.Time) error {
	if err := ValidateTransition(r.status, StatusExpired); err != nil {
		return err
	}
	r.status = StatusExpired
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsPending() bool   { return r.status == StatusPending }
func (r *Reservation) IsValidated() bool { return r.status == StatusValidated }

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RequesterID() uuid.UUID { return r.requesterID }
func (r *Reservation) Target() Target         { return r.target }
func (r *Reservation) Period() DateRange      { return r.period }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CautionPaid() bool      { return r.cautionPaid }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
