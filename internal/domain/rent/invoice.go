package rent

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInvoiceTransition = errors.New("invalid rent invoice transition")
	ErrNotYetDue                = errors.New("rent invoice is not past its due date")
)

type Invoice struct {
	id          uuid.UUID
	leaseID     uuid.UUID
	sequence    int
	periodStart time.Time
	periodEnd   time.Time
	dueDate     time.Time
	amount      int64
	currency    string
	status      InvoiceStatus
	paidAt      *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructInvoice(
	id, leaseID uuid.UUID,
	sequence int,
	periodStart, periodEnd, dueDate time.Time,
	amount int64,
	currency string,
	status InvoiceStatus,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		id:          id,
		leaseID:     leaseID,
		sequence:    sequence,
		periodStart: periodStart,
		periodEnd:   periodEnd,
		dueDate:     dueDate,
		amount:      amount,
		currency:    currency,
		status:      status,
		paidAt:      paidAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Invoice) MarkPaid(now time.Time) error {
	if !i.status.CanTransitionTo(InvoicePaid) {
		return ErrInvalidInvoiceTransition
	}
	i.status = InvoicePaid
	i.paidAt = &now
	i.updatedAt = now
	return nil
}

// MarkOverdue is time-driven: only an awaiting invoice whose due date has passed qualifies.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if !i.status.CanTransitionTo(InvoiceOverdue) {
		return ErrInvalidInvoiceTransition
	}
	if !now.After(i.dueDate) {
		return ErrNotYetDue
	}
	i.status = InvoiceOverdue
	i.updatedAt = now
	return nil
}

func (i *Invoice) ID() uuid.UUID          { return i.id }
func (i *Invoice) LeaseID() uuid.UUID     { return i.leaseID }
func (i *Invoice) Sequence() int          { return i.sequence }
func (i *Invoice) PeriodStart() time.Time { return i.periodStart }
func (i *Invoice) PeriodEnd() time.Time   { return i.periodEnd }
func (i *Invoice) DueDate() time.Time     { return i.dueDate }
func (i *Invoice) Amount() int64          { return i.amount }
func (i *Invoice) Currency() string       { return i.currency }
func (i *Invoice) Status() InvoiceStatus  { return i.status }
func (i *Invoice) PaidAt() *time.Time     { return i.paidAt }
func (i *Invoice) CreatedAt() time.Time   { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time   { return i.updatedAt }
