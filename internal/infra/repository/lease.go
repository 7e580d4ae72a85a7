package repository

//go:generate mockgen -source=lease.go -destination=../../../tests/mock/repository/lease.go -package=repositorymock

import (
	"context"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LeaseWriteQueries interface {
	InsertLeaseContract(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLeaseContractParams) (int64, error)
	GetLeaseByReservationID(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.LeaseContract, error)
	GetLeaseForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LeaseContract, error)
	SetLeaseDocumentRef(ctx context.Context, db sqlc.DBTX, arg sqlc.SetLeaseDocumentRefParams) (int64, error)
}

type LeaseRepository struct {
	queries LeaseWriteQueries
	db      sqlc.DBTX
}

func NewLeaseRepository(queries LeaseWriteQueries, db sqlc.DBTX) *LeaseRepository {
	return &LeaseRepository{
		queries: queries,
		db:      db,
	}
}

// CreateIfAbsent is keyed by reservation id. On conflict the existing contract is returned with created=false.
func (r *LeaseRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, c *lease.Contract) (*lease.Contract, bool, error) {
	n, err := r.queries.InsertLeaseContract(ctx, tx, converter.LeaseToInfra(c))
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to insert lease contract", err)
	}
	if n == 1 {
		return c, true, nil
	}

	existing, err := r.FindByReservationID(ctx, tx, c.ReservationID())
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *LeaseRepository) FindByReservationID(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*lease.Contract, error) {
	row, err := r.queries.GetLeaseByReservationID(ctx, tx, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lease not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lease by reservation", err)
	}
	return converter.LeaseFromInfra(row), nil
}

func (r *LeaseRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*lease.Contract, error) {
	row, err := r.queries.GetLeaseForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lease not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock lease", err)
	}
	return converter.LeaseFromInfra(row), nil
}

func (r *LeaseRepository) SetDocumentRef(ctx context.Context, tx sqlc.DBTX, c *lease.Contract) error {
	n, err := r.queries.SetLeaseDocumentRef(ctx, tx, sqlc.SetLeaseDocumentRefParams{
		ID:          c.ID(),
		DocumentRef: pgconv.StringPtrToPgtype(c.DocumentRef()),
		UpdatedAt:   pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set lease document ref", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("lease document ref already set", nil, infra.KindConflict)
	}
	return nil
}
