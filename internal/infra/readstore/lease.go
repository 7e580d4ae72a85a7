package readstore

import (
	"context"

	"furnished-lease-engine/internal/infra"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
	"furnished-lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeaseViewQueries interface {
	GetLeaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LeaseContract, error)
	GetLeaseByReservationID(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.LeaseContract, error)
	ListInvoicesByLease(ctx context.Context, db sqlc.DBTX, leaseID uuid.UUID) ([]sqlc.RentInvoice, error)
}

type LeaseReadStore struct {
	queries LeaseViewQueries
	db      sqlc.DBTX
}

func NewLeaseReadStore(queries LeaseViewQueries, db sqlc.DBTX) *LeaseReadStore {
	return &LeaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LeaseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeaseView, error) {
	row, err := r.queries.GetLeaseByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lease not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lease by ID", err)
	}
	return toLeaseView(row), nil
}

func (r *LeaseReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.LeaseView, error) {
	row, err := r.queries.GetLeaseByReservationID(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lease not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lease by reservation", err)
	}
	return toLeaseView(row), nil
}

func (r *LeaseReadStore) ListInvoicesByLease(ctx context.Context, leaseID uuid.UUID) ([]*queries.InvoiceView, error) {
	rows, err := r.queries.ListInvoicesByLease(ctx, r.db, leaseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}

	result := make([]*queries.InvoiceView, len(rows))
	for i, row := range rows {
		result[i] = toInvoiceView(row)
	}
	return result, nil
}

func toLeaseView(row sqlc.LeaseContract) *queries.LeaseView {
	return &queries.LeaseView{
		ID:              row.ID,
		ReservationID:   row.ReservationID,
		PaymentID:       row.PaymentID,
		TenantID:        row.TenantID,
		TenantName:      row.TenantName,
		TenantEmail:     row.TenantEmail,
		TargetKind:      row.TargetKind,
		TargetID:        row.TargetID,
		PropertyID:      row.PropertyID,
		TargetLabel:     row.TargetLabel,
		TargetAddress:   row.TargetAddress,
		TargetSurfaceM2: row.TargetSurfaceM2,
		StartDate:       pgconv.DateFromPgtype(row.StartDate),
		EndDate:         pgconv.DateFromPgtype(row.EndDate),
		MonthlyRent:     row.MonthlyRent,
		Deposit:         row.Deposit,
		Currency:        row.Currency,
		Status:          row.Status,
		DocumentRef:     pgconv.StringPtrFromPgtype(row.DocumentRef),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toInvoiceView(row sqlc.RentInvoice) *queries.InvoiceView {
	return &queries.InvoiceView{
		ID:          row.ID,
		LeaseID:     row.LeaseID,
		Sequence:    row.Sequence,
		PeriodStart: pgconv.DateFromPgtype(row.PeriodStart),
		PeriodEnd:   pgconv.DateFromPgtype(row.PeriodEnd),
		DueDate:     pgconv.DateFromPgtype(row.DueDate),
		Amount:      row.Amount,
		Currency:    row.Currency,
		Status:      row.Status,
		PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
	}
}
