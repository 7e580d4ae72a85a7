//go:build unit

package lease_test

import (
	"testing"
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2023, 12, 28, 15, 0, 0, 0, time.UTC)

func validatedReservation(unitID uuid.UUID) *reservation.Reservation {
	return builder.NewReservationBuilder().
		OnUnit(unitID).
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusValidated }).
		Build()
}

func deposit(res *reservation.Reservation, amount int64, status payment.Status) *payment.Payment {
	return payment.ReconstructPayment(
		uuid.New(), res.ID(), payment.KindDeposit,
		amount, "eur", status, "chrg_m",
		payment.Payer{}, nil, "", now, now,
	)
}

func unitSnapshot(id uuid.UUID) lease.TargetSnapshot {
	return lease.TargetSnapshot{
		Kind:        string(reservation.TargetUnit),
		ID:          id,
		PropertyID:  uuid.New(),
		Label:       "Room A",
		MonthlyRent: 62000,
		Currency:    "EUR",
	}
}

func TestMaterialize(t *testing.T) {
	unitID := uuid.New()
	tenant := lease.TenantSnapshot{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	t.Run("rent and deposit come from the listing, not the payer", func(t *testing.T) {
		res := validatedReservation(unitID)
		p := deposit(res, 1, payment.StatusCompleted)

		c, err := lease.Materialize(res, p, tenant, unitSnapshot(unitID), lease.DepositPolicy{Months: 2}, now)
		require.NoError(t, err)

		assert.Equal(t, res.ID(), c.ReservationID())
		assert.Equal(t, p.ID(), c.PaymentID())
		assert.Equal(t, res.Period().Start(), c.StartDate())
		assert.Equal(t, res.Period().End(), c.EndDate())
		assert.Equal(t, int64(62000), c.MonthlyRent())
		assert.Equal(t, int64(124000), c.Deposit())
		assert.Equal(t, "eur", c.Currency())
		assert.Equal(t, lease.StatusActive, c.Status())
		assert.Nil(t, c.DocumentRef())
		assert.Equal(t, tenant, c.Tenant())
	})

	testCases := []struct {
		name   string
		res    func() *reservation.Reservation
		pay    func(res *reservation.Reservation) *payment.Payment
		target func() lease.TargetSnapshot
		errIs  error
	}{
		{
			name: "pending reservation",
			res:  func() *reservation.Reservation { return builder.NewReservationBuilder().OnUnit(unitID).Build() },
			pay: func(res *reservation.Reservation) *payment.Payment {
				return deposit(res, 100, payment.StatusCompleted)
			},
			target: func() lease.TargetSnapshot { return unitSnapshot(unitID) },
			errIs:  lease.ErrReservationNotValidated,
		},
		{
			name: "failed payment",
			res:  func() *reservation.Reservation { return validatedReservation(unitID) },
			pay: func(res *reservation.Reservation) *payment.Payment {
				return deposit(res, 100, payment.StatusFailed)
			},
			target: func() lease.TargetSnapshot { return unitSnapshot(unitID) },
			errIs:  lease.ErrPaymentNotCompleted,
		},
		{
			name: "snapshot of another unit",
			res:  func() *reservation.Reservation { return validatedReservation(unitID) },
			pay: func(res *reservation.Reservation) *payment.Payment {
				return deposit(res, 100, payment.StatusCompleted)
			},
			target: func() lease.TargetSnapshot { return unitSnapshot(uuid.New()) },
			errIs:  lease.ErrTargetMismatch,
		},
		{
			name: "negative rent",
			res:  func() *reservation.Reservation { return validatedReservation(unitID) },
			pay: func(res *reservation.Reservation) *payment.Payment {
				return deposit(res, 100, payment.StatusCompleted)
			},
			target: func() lease.TargetSnapshot {
				s := unitSnapshot(unitID)
				s.MonthlyRent = -1
				return s
			},
			errIs: lease.ErrNegativeRent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.res()
			c, err := lease.Materialize(res, tc.pay(res), tenant, tc.target(), lease.DepositPolicy{Months: 2}, now)
			assert.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, c)
		})
	}
}

func TestDepositPolicy_DepositFor(t *testing.T) {
	explicit := int64(30000)
	zero := int64(0)

	testCases := []struct {
		name   string
		policy lease.DepositPolicy
		amount *int64
		want   int64
	}{
		{name: "months of rent", policy: lease.DepositPolicy{Months: 2}, want: 124000},
		{name: "explicit amount wins", policy: lease.DepositPolicy{Months: 2}, amount: &explicit, want: 30000},
		{name: "explicit zero is honoured", policy: lease.DepositPolicy{Months: 2}, amount: &zero, want: 0},
		{name: "no policy", policy: lease.DepositPolicy{}, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := unitSnapshot(uuid.New())
			s.DepositAmount = tc.amount
			assert.Equal(t, tc.want, tc.policy.DepositFor(s))
		})
	}
}

func TestContract_AttachDocument(t *testing.T) {
	c := builder.NewLeaseBuilder().BuildDomain()
	later := now.Add(time.Hour)

	changed, err := c.AttachDocument(" leases/1.pdf ", later)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, c.DocumentRef())
	assert.Equal(t, "leases/1.pdf", *c.DocumentRef())
	assert.Equal(t, later, c.UpdatedAt())

	changed, err = c.AttachDocument("leases/1.pdf", later.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, later, c.UpdatedAt())

	_, err = c.AttachDocument("leases/2.pdf", later)
	assert.ErrorIs(t, err, lease.ErrDocumentRefConflict)

	_, err = builder.NewLeaseBuilder().BuildDomain().AttachDocument("", later)
	assert.ErrorIs(t, err, lease.ErrEmptyDocumentRef)
}
