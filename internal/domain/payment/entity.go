package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingExternalRef = errors.New("external transaction reference is required")
	ErrNegativeAmount     = errors.New("payment amount cannot be negative")
	ErrAlreadySettled     = errors.New("payment is already settled")
	ErrInvalidSettlement  = errors.New("payment can only settle to completed or failed")
)

type Payer struct {
	Name  string
	Email string
	Phone string
}

// BillingPeriod is only set for monthly rent payments.
type BillingPeriod struct {
	Start time.Time
	End   time.Time
}

type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	kind          Kind
	amount        int64
	currency      string
	status        Status
	externalRef   string
	payer         Payer
	billingPeriod *BillingPeriod
	failureReason string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewDepositAttempt records an unsettled deposit confirmation attempt.
func NewDepositAttempt(reservationID uuid.UUID, externalRef string, declaredAmount int64, currency string, payer Payer, now time.Time) (*Payment, error) {
	ref := strings.TrimSpace(externalRef)
	if ref == "" {
		return nil, ErrMissingExternalRef
	}
	if declaredAmount < 0 {
		return nil, ErrNegativeAmount
	}
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		kind:          KindDeposit,
		amount:        declaredAmount,
		currency:      strings.ToLower(currency),
		status:        StatusPending,
		externalRef:   ref,
		payer:         payer,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPayment(
	id, reservationID uuid.UUID,
	kind Kind,
	amount int64,
	currency string,
	status Status,
	externalRef string,
	payer Payer,
	billingPeriod *BillingPeriod,
	failureReason string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		kind:          kind,
		amount:        amount,
		currency:      currency,
		status:        status,
		externalRef:   externalRef,
		payer:         payer,
		billingPeriod: billingPeriod,
		failureReason: failureReason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Complete settles the payment with the amount actually captured.
func (p *Payment) Complete(amount int64, now time.Time) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	return p.settle(StatusCompleted, amount, "", now)
}

func (p *Payment) Fail(reason string, now time.Time) error {
	return p.settle(StatusFailed, p.amount, reason, now)
}

func (p *Payment) settle(to Status, amount int64, reason string, now time.Time) error {
	if p.status.IsFinal() {
		return ErrAlreadySettled
	}
	if to != StatusCompleted && to != StatusFailed {
		return ErrInvalidSettlement
	}
	p.status = to
	p.amount = amount
	p.failureReason = reason
	p.updatedAt = now
	return nil
}

func (p *Payment) IsCompleted() bool { return p.status == StatusCompleted }
func (p *Payment) IsFinal() bool     { return p.status.IsFinal() }

func (p *Payment) ID() uuid.UUID                 { return p.id }
func (p *Payment) ReservationID() uuid.UUID      { return p.reservationID }
func (p *Payment) Kind() Kind                    { return p.kind }
func (p *Payment) Amount() int64                 { return p.amount }
func (p *Payment) Currency() string              { return p.currency }
func (p *Payment) Status() Status                { return p.status }
func (p *Payment) ExternalRef() string           { return p.externalRef }
func (p *Payment) Payer() Payer                  { return p.payer }
func (p *Payment) BillingPeriod() *BillingPeriod { return p.billingPeriod }
func (p *Payment) FailureReason() string         { return p.failureReason }
func (p *Payment) CreatedAt() time.Time          { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time          { return p.updatedAt }
