package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/usecase/shared"
)

type ReservationCommands interface {
	// ExpirePending expires pending reservations whose start date is before asOf.
	// A stay starting on asOf can still be paid that day.
	ExpirePending(ctx context.Context, asOf time.Time, limit int32) (int, error)
}

type reservationUseCaseImpl struct {
	uow    shared.UnitOfWork
	kicker OutboxKicker
	clock  clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, kicker OutboxKicker, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, kicker: kicker, clock: clk}
}

func (uc *reservationUseCaseImpl) ExpirePending(ctx context.Context, asOf time.Time, limit int32) (int, error) {
	expired := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = 0
		now := uc.clock.Now()

		candidates, err := tx.Reservations().ListExpirable(ctx, tx.DB(), asOf, limit)
		if err != nil {
			return err
		}

		for _, res := range candidates {
			if err := res.Expire(now); err != nil {
				continue
			}
			if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					continue
				}
				return err
			}
			err := enqueueNotify(ctx, tx, res.RequesterID(), shared.EventReservationExpired, map[string]any{
				"reservationId": res.ID(),
				"startDate":     res.Period().Start().Format(time.DateOnly),
				"endDate":       res.Period().End().Format(time.DateOnly),
			}, now)
			if err != nil {
				return err
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, markUnexpected(err)
	}

	if expired > 0 {
		uc.kicker.Kick()
		slog.Info("pending reservations expired", "count", expired, "as_of", asOf.Format(time.DateOnly))
	}
	return expired, nil
}
