//go:build unit

package payment_test

import (
	"testing"
	"time"

	"furnished-lease-engine/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

func TestNewDepositAttempt(t *testing.T) {
	resID := uuid.New()

	t.Run("normalizes ref and currency", func(t *testing.T) {
		p, err := payment.NewDepositAttempt(resID, "  chrg_test_1 ", 50000, "EUR", payment.Payer{Name: "Alice"}, now)
		require.NoError(t, err)

		assert.Equal(t, "chrg_test_1", p.ExternalRef())
		assert.Equal(t, "eur", p.Currency())
		assert.Equal(t, payment.KindDeposit, p.Kind())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.False(t, p.IsFinal())
		assert.Nil(t, p.BillingPeriod())
		assert.Equal(t, resID, p.ReservationID())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		_, err := payment.NewDepositAttempt(resID, "chrg_0", 0, "eur", payment.Payer{}, now)
		assert.NoError(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := payment.NewDepositAttempt(resID, "chrg_neg", -1, "eur", payment.Payer{}, now)
		assert.ErrorIs(t, err, payment.ErrNegativeAmount)
	})

	t.Run("blank ref", func(t *testing.T) {
		_, err := payment.NewDepositAttempt(resID, " \t", 100, "eur", payment.Payer{}, now)
		assert.ErrorIs(t, err, payment.ErrMissingExternalRef)
	})
}

func TestPayment_Settle(t *testing.T) {
	later := now.Add(time.Minute)

	newAttempt := func(t *testing.T) *payment.Payment {
		p, err := payment.NewDepositAttempt(uuid.New(), "chrg_s", 50000, "eur", payment.Payer{}, now)
		require.NoError(t, err)
		return p
	}

	t.Run("complete takes the captured amount", func(t *testing.T) {
		p := newAttempt(t)
		require.NoError(t, p.Complete(48000, later))
		assert.True(t, p.IsCompleted())
		assert.Equal(t, int64(48000), p.Amount())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("fail keeps the declared amount", func(t *testing.T) {
		p := newAttempt(t)
		require.NoError(t, p.Fail("card_declined", later))
		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Equal(t, "card_declined", p.FailureReason())
		assert.Equal(t, int64(50000), p.Amount())
	})

	t.Run("final payments are never re-settled", func(t *testing.T) {
		p := newAttempt(t)
		require.NoError(t, p.Fail("card_declined", later))

		assert.ErrorIs(t, p.Complete(50000, later), payment.ErrAlreadySettled)
		assert.ErrorIs(t, p.Fail("again", later), payment.ErrAlreadySettled)
		assert.Equal(t, payment.StatusFailed, p.Status())
	})

	t.Run("negative captured amount", func(t *testing.T) {
		p := newAttempt(t)
		assert.ErrorIs(t, p.Complete(-5, later), payment.ErrNegativeAmount)
		assert.Equal(t, payment.StatusPending, p.Status())
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, payment.StatusPending.IsFinal())
	assert.True(t, payment.StatusCompleted.IsFinal())
	assert.True(t, payment.StatusFailed.IsFinal())
	assert.True(t, payment.StatusRefunded.IsFinal())
}
