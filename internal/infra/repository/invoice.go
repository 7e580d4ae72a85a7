package repository

import (
	"context"
	"time"

	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InvoiceWriteQueries interface {
	InsertRentInvoices(ctx context.Context, db sqlc.DBTX, arg []sqlc.InsertRentInvoicesParams) (int64, error)
	ListInvoicesByLease(ctx context.Context, db sqlc.DBTX, leaseID uuid.UUID) ([]sqlc.RentInvoice, error)
	GetInvoiceForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RentInvoice, error)
	ListOverdueCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverdueCandidatesParams) ([]sqlc.RentInvoice, error)
	UpdateInvoiceStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvoiceStatusParams) (int64, error)
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

// InsertBatch writes the whole schedule with COPY. A short count is a failure so the caller rolls back.
func (r *InvoiceRepository) InsertBatch(ctx context.Context, tx sqlc.DBTX, invoices []*rent.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	n, err := r.queries.InsertRentInvoices(ctx, tx, converter.InvoicesToInfra(invoices))
	if err != nil {
		return infra.WrapRepoErr("failed to insert rent invoices", err)
	}
	if n != int64(len(invoices)) {
		return infra.WrapRepoErr("rent invoice batch partially inserted", nil, infra.KindDBFailure)
	}
	return nil
}

func (r *InvoiceRepository) ListByLease(ctx context.Context, tx sqlc.DBTX, leaseID uuid.UUID) ([]*rent.Invoice, error) {
	rows, err := r.queries.ListInvoicesByLease(ctx, tx, leaseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rent invoices", err)
	}
	return converter.InvoicesFromInfra(rows), nil
}

func (r *InvoiceRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*rent.Invoice, error) {
	row, err := r.queries.GetInvoiceForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rent invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock rent invoice", err)
	}
	return converter.InvoiceFromInfra(row), nil
}

func (r *InvoiceRepository) ListOverdueCandidates(ctx context.Context, tx sqlc.DBTX, asOf time.Time, limit int32) ([]*rent.Invoice, error) {
	rows, err := r.queries.ListOverdueCandidates(ctx, tx, sqlc.ListOverdueCandidatesParams{
		AsOf:    pgconv.DateToPgtype(asOf),
		MaxRows: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue candidates", err)
	}
	return converter.InvoicesFromInfra(rows), nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, inv *rent.Invoice) error {
	n, err := r.queries.UpdateInvoiceStatus(ctx, tx, converter.InvoiceStatusToInfra(inv))
	if err != nil {
		return infra.WrapRepoErr("failed to update rent invoice", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("rent invoice not found", nil, infra.KindNotFound)
	}
	return nil
}
