package repository

import (
	"context"

	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	LockTarget(ctx context.Context, db sqlc.DBTX, lockKey string) error
	ListActiveReservationsForTarget(ctx context.Context, db sqlc.DBTX, targetID uuid.UUID) ([]sqlc.Reservation, error)
}

// CalendarRepository guards the per-target calendar. The lock scope is the target id, never a reservation id.
type CalendarRepository struct {
	queries CalendarQueries
	db      sqlc.DBTX
}

func NewCalendarRepository(queries CalendarQueries, db sqlc.DBTX) *CalendarRepository {
	return &CalendarRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarRepository) LockTarget(ctx context.Context, tx sqlc.DBTX, target reservation.Target) error {
	if err := r.queries.LockTarget(ctx, tx, target.LockKey()); err != nil {
		return infra.WrapRepoErr("failed to lock target calendar", err)
	}
	return nil
}

// ListActiveForTarget row-locks every pending and validated reservation of the target.
func (r *CalendarRepository) ListActiveForTarget(ctx context.Context, tx sqlc.DBTX, target reservation.Target) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsForTarget(ctx, tx, target.ID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations for target", err)
	}

	result, err := converter.ReservationsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservations", err, infra.KindDBFailure)
	}
	return result, nil
}
