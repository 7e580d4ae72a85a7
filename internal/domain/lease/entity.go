package lease

import (
	"errors"
	"strings"
	"time"

	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrReservationNotValidated = errors.New("lease requires a validated reservation")
	ErrPaymentNotCompleted     = errors.New("lease requires a completed payment for the reservation")
	ErrTargetMismatch          = errors.New("target snapshot does not match reservation target")
	ErrNegativeRent            = errors.New("monthly rent cannot be negative")
	ErrDocumentRefConflict     = errors.New("lease already has a different document reference")
	ErrEmptyDocumentRef        = errors.New("document reference is empty")
)

type Contract struct {
	id            uuid.UUID
	reservationID uuid.UUID
	paymentID     uuid.UUID
	tenant        TenantSnapshot
	target        TargetSnapshot
	startDate     time.Time
	endDate       time.Time
	monthlyRent   int64
	deposit       int64
	currency      string
	status        Status
	documentRef   *string
	createdAt     time.Time
	updatedAt     time.Time
}

// Materialize builds the contract for a reservation that has just been validated.
// Monthly rent comes from the target's pricing snapshot and the deposit from policy.
// Payer-declared amounts never reach the contract.
func Materialize(
	res *reservation.Reservation,
	p *payment.Payment,
	tenant TenantSnapshot,
	target TargetSnapshot,
	policy DepositPolicy,
	now time.Time,
) (*Contract, error) {
	if res == nil || !res.IsValidated() {
		return nil, ErrReservationNotValidated
	}
	if p == nil || !p.IsCompleted() || p.ReservationID() != res.ID() {
		return nil, ErrPaymentNotCompleted
	}
	if target.ID != res.Target().ID() || target.Kind != string(res.Target().Kind()) {
		return nil, ErrTargetMismatch
	}
	if target.MonthlyRent < 0 {
		return nil, ErrNegativeRent
	}

	currency := target.Currency
	if currency == "" {
		currency = p.Currency()
	}

	return &Contract{
		id:            uuid.New(),
		reservationID: res.ID(),
		paymentID:     p.ID(),
		tenant:        tenant,
		target:        target,
		startDate:     res.Period().Start(),
		endDate:       res.Period().End(),
		monthlyRent:   target.MonthlyRent,
		deposit:       policy.DepositFor(target),
		currency:      strings.ToLower(currency),
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructContract(
	id, reservationID, paymentID uuid.UUID,
	tenant TenantSnapshot,
	target TargetSnapshot,
	startDate, endDate time.Time,
	monthlyRent, deposit int64,
	currency string,
	status Status,
	documentRef *string,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:            id,
		reservationID: reservationID,
		paymentID:     paymentID,
		tenant:        tenant,
		target:        target,
		startDate:     startDate,
		endDate:       endDate,
		monthlyRent:   monthlyRent,
		deposit:       deposit,
		currency:      currency,
		status:        status,
		documentRef:   documentRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// AttachDocument stores the rendered document reference. Re-attaching the same ref is a no-op.
func (c *Contract) AttachDocument(ref string, now time.Time) (changed bool, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false, ErrEmptyDocumentRef
	}
	if c.documentRef != nil {
		if *c.documentRef == ref {
			return false, nil
		}
		return false, ErrDocumentRefConflict
	}
	c.documentRef = &ref
	c.updatedAt = now
	return true, nil
}

func (c *Contract) ID() uuid.UUID            { return c.id }
func (c *Contract) ReservationID() uuid.UUID { return c.reservationID }
func (c *Contract) PaymentID() uuid.UUID     { return c.paymentID }
func (c *Contract) Tenant() TenantSnapshot   { return c.tenant }
func (c *Contract) Target() TargetSnapshot   { return c.target }
func (c *Contract) StartDate() time.Time     { return c.startDate }
func (c *Contract) EndDate() time.Time       { return c.endDate }
func (c *Contract) MonthlyRent() int64       { return c.monthlyRent }
func (c *Contract) Deposit() int64           { return c.deposit }
func (c *Contract) Currency() string         { return c.currency }
func (c *Contract) Status() Status           { return c.status }
func (c *Contract) DocumentRef() *string     { return c.documentRef }
func (c *Contract) CreatedAt() time.Time     { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time     { return c.updatedAt }
