//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTarget(t *testing.T) {
	id := uuid.New()
	nilID := uuid.Nil

	testCases := []struct {
		name       string
		propertyID *uuid.UUID
		unitID     *uuid.UUID
		wantKind   reservation.TargetKind
		errIs      error
	}{
		{name: "property", propertyID: &id, wantKind: reservation.TargetProperty},
		{name: "unit", unitID: &id, wantKind: reservation.TargetUnit},
		{name: "unit with nil property id", propertyID: &nilID, unitID: &id, wantKind: reservation.TargetUnit},
		{name: "both", propertyID: &id, unitID: &id, errIs: reservation.ErrInvalidTarget},
		{name: "neither", errIs: reservation.ErrInvalidTarget},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, err := reservation.NewTarget(tc.propertyID, tc.unitID)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, target.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, target.Kind())
			assert.Equal(t, id, target.ID())
		})
	}
}

func TestTarget_Equal(t *testing.T) {
	id := uuid.New()

	assert.True(t, reservation.UnitTarget(id).Equal(reservation.UnitTarget(id)))
	assert.False(t, reservation.UnitTarget(id).Equal(reservation.PropertyTarget(id)), "same id on different kinds is a different target")
	assert.False(t, reservation.UnitTarget(id).Equal(reservation.UnitTarget(uuid.New())))
	assert.Equal(t, "unit:"+id.String(), reservation.UnitTarget(id).LockKey())
}

func TestDateRange(t *testing.T) {
	t.Run("truncates to UTC days", func(t *testing.T) {
		paris := time.FixedZone("CET", 3600)
		r, err := reservation.NewDateRange(
			time.Date(2024, 1, 1, 0, 30, 0, 0, paris),
			time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, d(2023, 12, 31), r.Start())
		assert.Equal(t, d(2024, 1, 10), r.End())
		assert.Equal(t, 10, r.Days())
	})

	t.Run("empty range is rejected", func(t *testing.T) {
		_, err := reservation.NewDateRange(d(2024, 1, 1), d(2024, 1, 1))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)

		_, err = reservation.NewDateRange(d(2024, 1, 2), d(2024, 1, 1))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		jan := reservation.MustDateRange(d(2024, 1, 1), d(2024, 2, 1))
		feb := reservation.MustDateRange(d(2024, 2, 1), d(2024, 3, 1))
		midJan := reservation.MustDateRange(d(2024, 1, 20), d(2024, 2, 10))

		assert.False(t, jan.Overlaps(feb), "checkout day is free for the next arrival")
		assert.False(t, feb.Overlaps(jan))
		assert.True(t, jan.Overlaps(midJan))
		assert.True(t, midJan.Overlaps(feb))
		assert.True(t, jan.Overlaps(jan))
	})
}

func TestResolveConflicts(t *testing.T) {
	unit := uuid.New()
	winner := builder.NewReservationBuilder().OnUnit(unit).Between(d(2024, 1, 1), d(2024, 3, 1)).Build()

	overlapping := builder.NewReservationBuilder().OnUnit(unit).Between(d(2024, 2, 1), d(2024, 4, 1)).Build()
	adjacent := builder.NewReservationBuilder().OnUnit(unit).Between(d(2024, 3, 1), d(2024, 4, 1)).Build()
	otherUnit := builder.NewReservationBuilder().Between(d(2024, 1, 1), d(2024, 3, 1)).Build()
	cancelled := builder.NewReservationBuilder().OnUnit(unit).Between(d(2024, 1, 10), d(2024, 1, 20)).
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled }).Build()
	validated := builder.NewReservationBuilder().OnUnit(unit).Between(d(2023, 12, 1), d(2024, 1, 5)).
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusValidated }).Build()

	candidates := []*reservation.Reservation{winner, overlapping, adjacent, otherUnit, cancelled, validated, nil}

	ids := reservation.ResolveConflicts(winner.Target(), winner.Period(), winner.ID(), candidates)
	assert.Equal(t, []uuid.UUID{overlapping.ID()}, ids)

	taken := reservation.FindValidatedOverlap(winner.Target(), winner.Period(), winner.ID(), candidates)
	require.NotNil(t, taken)
	assert.Equal(t, validated.ID(), taken.ID())

	assert.Nil(t, reservation.FindValidatedOverlap(adjacent.Target(), adjacent.Period(), adjacent.ID(), candidates))
}
