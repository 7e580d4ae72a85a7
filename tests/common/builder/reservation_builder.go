//go:build unit || e2e

package builder

import (
	"time"

	"furnished-lease-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Target      reservation.Target
	Start       time.Time
	End         time.Time
	Status      reservation.Status
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Target:      reservation.UnitTarget(uuid.New()),
		Start:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      reservation.StatusPending,
		CreatedAt:   time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) OnUnit(id uuid.UUID) *ReservationBuilder {
	b.Target = reservation.UnitTarget(id)
	return b
}

func (b *ReservationBuilder) Between(start, end time.Time) *ReservationBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.RequesterID,
		b.Target,
		reservation.MustDateRange(b.Start, b.End),
		b.Status,
		b.Status == reservation.StatusValidated,
		b.CreatedAt, b.CreatedAt,
	)
}
