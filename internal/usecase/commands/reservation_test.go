//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/shared"
	"furnished-lease-engine/tests/common/builder"
	"furnished-lease-engine/tests/common/fakeuow"
	commandsmock "furnished-lease-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationUseCase_ExpirePending(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 30, 0, time.UTC)
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	startsToday := builder.NewReservationBuilder().Between(date(2024, 1, 1), date(2024, 2, 1)).Build()
	startedYesterday := builder.NewReservationBuilder().Between(date(2023, 12, 31), date(2024, 1, 31)).Build()
	startedLastWeek := builder.NewReservationBuilder().Between(date(2023, 12, 25), date(2024, 1, 25)).Build()
	startsLater := builder.NewReservationBuilder().Between(date(2024, 5, 1), date(2024, 6, 1)).Build()
	validated := builder.NewReservationBuilder().
		Between(date(2023, 12, 1), date(2024, 2, 1)).
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusValidated }).
		Build()

	ctrl := gomock.NewController(t)
	kicker := commandsmock.NewMockOutboxKicker(ctrl)
	kicker.EXPECT().Kick().Times(1)

	uow := fakeuow.New()
	for _, r := range []*reservation.Reservation{startsToday, startedYesterday, startedLastWeek, startsLater, validated} {
		uow.AddReservation(r)
	}

	sut := commands.NewReservationUseCase(uow, kicker, clock.NewMockClock(now))
	n, err := sut.ExpirePending(context.Background(), asOf, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, reservation.StatusPending, uow.Reservation(startsToday.ID()).Status(), "deposit can still arrive on the start day")
	assert.Equal(t, reservation.StatusExpired, uow.Reservation(startedYesterday.ID()).Status())
	assert.Equal(t, reservation.StatusExpired, uow.Reservation(startedLastWeek.ID()).Status())
	assert.Equal(t, reservation.StatusPending, uow.Reservation(startsLater.ID()).Status())
	assert.Equal(t, reservation.StatusValidated, uow.Reservation(validated.ID()).Status())

	jobs := uow.OutboxJobs()
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, shared.EventReservationExpired, job.Topic)
		assert.Equal(t, now, job.RunAt)
	}

	t.Run("second run finds nothing", func(t *testing.T) {
		n, err := sut.ExpirePending(context.Background(), asOf, 50)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
