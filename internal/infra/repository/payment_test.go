//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
	repositorymock "furnished-lease-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func paymentRow(p *payment.Payment, status payment.Status, amount int64) sqlc.Payment {
	return sqlc.Payment{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		Kind:          string(payment.KindDeposit),
		Amount:        amount,
		Currency:      p.Currency(),
		Status:        string(status),
		ExternalRef:   p.ExternalRef(),
		PayerName:     "Alice",
		FailureReason: pgtype.Text{},
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

// =============================================================================
// UpsertAttempt Tests
// =============================================================================

func TestPaymentRepository_UpsertAttempt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: returns the stored row for the same reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		attempt, err := payment.NewDepositAttempt(uuid.New(), "chrg_1", 50000, "eur", payment.Payer{Name: "Alice"}, now)
		require.NoError(t, err)

		// an earlier delivery already completed this reference
		stored := paymentRow(attempt, payment.StatusCompleted, 48000)
		stored.ID = uuid.New()

		mockQueries.EXPECT().
			UpsertDepositAttempt(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertDepositAttemptParams) (sqlc.Payment, error) {
				assert.Equal(t, attempt.ID(), arg.ID)
				assert.Equal(t, "chrg_1", arg.ExternalRef)
				assert.Equal(t, "Alice", arg.PayerName)
				return stored, nil
			})

		got, err := repo.UpsertAttempt(ctx, mockDB, attempt)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, got.ID())
		assert.Equal(t, payment.StatusCompleted, got.Status())
		assert.Equal(t, int64(48000), got.Amount())
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		attempt, err := payment.NewDepositAttempt(uuid.New(), "chrg_1", 50000, "eur", payment.Payer{}, now)
		require.NoError(t, err)

		mockQueries.EXPECT().UpsertDepositAttempt(ctx, mockDB, gomock.Any()).Return(sqlc.Payment{}, errors.New("timeout"))

		got, err := repo.UpsertAttempt(ctx, mockDB, attempt)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: reference already settles another reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		attempt, err := payment.NewDepositAttempt(uuid.New(), "chrg_once", 50000, "eur", payment.Payer{}, now)
		require.NoError(t, err)

		mockQueries.EXPECT().UpsertDepositAttempt(ctx, mockDB, gomock.Any()).
			Return(sqlc.Payment{}, &pgconn.PgError{Code: "23505", ConstraintName: "uq_payments_deposit_ref"})

		got, err := repo.UpsertAttempt(ctx, mockDB, attempt)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

// =============================================================================
// Settle Tests
// =============================================================================

func TestPaymentRepository_Settle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	newFailed := func(t *testing.T) *payment.Payment {
		p, err := payment.NewDepositAttempt(uuid.New(), "chrg_2", 50000, "eur", payment.Payer{}, now)
		require.NoError(t, err)
		require.NoError(t, p.Fail("card_declined", now.Add(time.Second)))
		return p
	}

	testCases := []struct {
		name       string
		setupMock  func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, db sqlc.DBTX)
		wantStatus payment.Status
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: pending row settled",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, db sqlc.DBTX) {
				m.EXPECT().
					SettlePayment(ctx, db, sqlc.SettlePaymentParams{
						ID:            p.ID(),
						Status:        "failed",
						Amount:        50000,
						Currency:      "eur",
						FailureReason: pgconv.StringToPgtype("card_declined"),
						UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
					}).
					Return(paymentRow(p, payment.StatusFailed, 50000), nil)
			},
			wantStatus: payment.StatusFailed,
		},
		{
			name: "success: concurrent writer settled first",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, db sqlc.DBTX) {
				m.EXPECT().SettlePayment(ctx, db, gomock.Any()).Return(sqlc.Payment{}, pgx.ErrNoRows)
				m.EXPECT().GetPaymentByID(ctx, db, p.ID()).Return(paymentRow(p, payment.StatusCompleted, 50000), nil)
			},
			wantStatus: payment.StatusCompleted,
		},
		{
			name: "error: row vanished",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, db sqlc.DBTX) {
				m.EXPECT().SettlePayment(ctx, db, gomock.Any()).Return(sqlc.Payment{}, pgx.ErrNoRows)
				m.EXPECT().GetPaymentByID(ctx, db, p.ID()).Return(sqlc.Payment{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: settle failed",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, db sqlc.DBTX) {
				m.EXPECT().SettlePayment(ctx, db, gomock.Any()).Return(sqlc.Payment{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			p := newFailed(t)
			tc.setupMock(mockQueries, p, mockDB)

			got, err := repo.Settle(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status())
			assert.Equal(t, p.ID(), got.ID())
		})
	}
}
