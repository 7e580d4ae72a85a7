package queries

//go:generate mockgen -source=lease.go -destination=../../../tests/mock/queries/lease.go -package=queriesmock

import (
	"context"
	"time"

	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LeaseView struct {
	ID              uuid.UUID `json:"id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	PaymentID       uuid.UUID `json:"payment_id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	TenantName      string    `json:"tenant_name"`
	TenantEmail     string    `json:"tenant_email"`
	TargetKind      string    `json:"target_kind"`
	TargetID        uuid.UUID `json:"target_id"`
	PropertyID      uuid.UUID `json:"property_id"`
	TargetLabel     string    `json:"target_label"`
	TargetAddress   string    `json:"target_address"`
	TargetSurfaceM2 float64   `json:"target_surface_m2"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MonthlyRent     int64     `json:"monthly_rent"`
	Deposit         int64     `json:"deposit"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	DocumentRef     *string   `json:"document_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type InvoiceView struct {
	ID          uuid.UUID  `json:"id"`
	LeaseID     uuid.UUID  `json:"lease_id"`
	Sequence    int32      `json:"sequence"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	DueDate     time.Time  `json:"due_date"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

type LeaseQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LeaseView, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*LeaseView, error)
	ListInvoices(ctx context.Context, leaseID uuid.UUID) ([]*InvoiceView, error)
}

type LeaseViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeaseView, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*LeaseView, error)
	ListInvoicesByLease(ctx context.Context, leaseID uuid.UUID) ([]*InvoiceView, error)
}

type leaseQueriesImpl struct {
	repo LeaseViewRepo
}

func NewLeaseQueries(repo LeaseViewRepo) LeaseQueries {
	return &leaseQueriesImpl{repo: repo}
}

func (q *leaseQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LeaseView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrLeaseNotFound)
	}
	return view, nil
}

func (q *leaseQueriesImpl) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*LeaseView, error) {
	view, err := q.repo.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrLeaseNotFound)
	}
	return view, nil
}

// ListInvoices 404s on an unknown lease instead of returning an empty schedule.
func (q *leaseQueriesImpl) ListInvoices(ctx context.Context, leaseID uuid.UUID) ([]*InvoiceView, error) {
	if _, err := q.GetByID(ctx, leaseID); err != nil {
		return nil, err
	}
	return q.repo.ListInvoicesByLease(ctx, leaseID)
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
