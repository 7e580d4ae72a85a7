package readstore

import (
	"context"

	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID reads without locking. Writers must re-read through the repository under the target lock.
func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}
