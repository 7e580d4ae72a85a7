package readstore

import (
	"context"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type TargetReadQueries interface {
	GetUnitSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUnitSnapshotRow, error)
	GetPropertySnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertySnapshotRow, error)
	GetTenantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tenant, error)
}

// TargetReadStore loads the pricing and identity snapshots frozen into a lease.
type TargetReadStore struct {
	queries TargetReadQueries
	db      sqlc.DBTX
}

func NewTargetReadStore(queries TargetReadQueries, db sqlc.DBTX) *TargetReadStore {
	return &TargetReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TargetReadStore) FindTarget(ctx context.Context, target reservation.Target) (*lease.TargetSnapshot, error) {
	if target.Kind() == reservation.TargetUnit {
		row, err := r.queries.GetUnitSnapshot(ctx, r.db, target.ID())
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil, infra.WrapRepoErr("rental unit not found", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to load rental unit", err)
		}
		return &lease.TargetSnapshot{
			Kind:          string(reservation.TargetUnit),
			ID:            row.ID,
			PropertyID:    row.PropertyID,
			Label:         row.Label,
			Address:       row.Address,
			SurfaceM2:     row.SurfaceM2,
			MonthlyRent:   row.MonthlyRent,
			DepositAmount: pgconv.Int64PtrFromPgtype(row.DepositAmount),
			Currency:      row.Currency,
		}, nil
	}

	row, err := r.queries.GetPropertySnapshot(ctx, r.db, target.ID())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load property", err)
	}
	return &lease.TargetSnapshot{
		Kind:          string(reservation.TargetProperty),
		ID:            row.ID,
		PropertyID:    row.ID,
		Label:         row.Name,
		Address:       row.Address,
		SurfaceM2:     row.SurfaceM2,
		MonthlyRent:   row.MonthlyRent,
		DepositAmount: pgconv.Int64PtrFromPgtype(row.DepositAmount),
		Currency:      row.Currency,
	}, nil
}

func (r *TargetReadStore) FindTenant(ctx context.Context, id uuid.UUID) (*shared.TenantSnapshot, error) {
	row, err := r.queries.GetTenantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load tenant", err)
	}
	snap := &shared.TenantSnapshot{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
	if row.Phone.Valid {
		snap.Phone = row.Phone.String
	}
	return snap, nil
}
