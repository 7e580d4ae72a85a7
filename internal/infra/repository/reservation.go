package repository

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

import (
	"context"
	"time"

	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	ListExpirablePendingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpirablePendingReservationsParams) ([]sqlc.Reservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

// UpdateStatus only moves pending rows. Zero affected rows means a concurrent writer got there first.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, converter.ReservationStatusToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation is no longer pending", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) ListExpirable(ctx context.Context, tx sqlc.DBTX, asOf time.Time, limit int32) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListExpirablePendingReservations(ctx, tx, sqlc.ListExpirablePendingReservationsParams{
		AsOf:    pgconv.DateToPgtype(asOf),
		MaxRows: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expirable reservations", err)
	}

	result, err := converter.ReservationsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservations", err, infra.KindDBFailure)
	}
	return result, nil
}
