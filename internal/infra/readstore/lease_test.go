//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"furnished-lease-engine/internal/infra"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLeaseViewQueries struct {
	mock.Mock
}

func (m *MockLeaseViewQueries) GetLeaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LeaseContract, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.LeaseContract), args.Error(1)
}

func (m *MockLeaseViewQueries) GetLeaseByReservationID(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.LeaseContract, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).(sqlc.LeaseContract), args.Error(1)
}

func (m *MockLeaseViewQueries) ListInvoicesByLease(ctx context.Context, db sqlc.DBTX, leaseID uuid.UUID) ([]sqlc.RentInvoice, error) {
	args := m.Called(ctx, db, leaseID)
	return args.Get(0).([]sqlc.RentInvoice), args.Error(1)
}

func TestLeaseFindByID(t *testing.T) {
	id := uuid.New()
	row := sqlc.LeaseContract{
		ID:          id,
		TargetKind:  "unit",
		StartDate:   pgconv.DateToPgtype(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:     pgconv.DateToPgtype(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		MonthlyRent: 50000,
		Deposit:     100000,
		Currency:    "eur",
		Status:      "active",
		DocumentRef: pgconv.StringToPgtype("leases/abc.pdf"),
	}

	tests := []struct {
		name        string
		mockReturn  sqlc.LeaseContract
		mockError   error
		wantErrKind infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantErrKind: infra.KindNotFound},
		{name: "database failure", mockError: errors.New("timeout"), wantErrKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockLeaseViewQueries)
			mockQueries.On("GetLeaseByID", mock.Anything, mock.Anything, id).Return(tt.mockReturn, tt.mockError)

			view, err := NewLeaseReadStore(mockQueries, nil).FindByID(context.Background(), id)

			if tt.wantErrKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantErrKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, view.ID)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), view.StartDate)
				require.NotNil(t, view.DocumentRef)
				assert.Equal(t, "leases/abc.pdf", *view.DocumentRef)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestListInvoicesByLease(t *testing.T) {
	leaseID := uuid.New()
	paidAt := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	mockQueries := new(MockLeaseViewQueries)
	mockQueries.On("ListInvoicesByLease", mock.Anything, mock.Anything, leaseID).Return([]sqlc.RentInvoice{
		{
			ID:          uuid.New(),
			LeaseID:     leaseID,
			Sequence:    1,
			PeriodStart: pgconv.DateToPgtype(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			PeriodEnd:   pgconv.DateToPgtype(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
			DueDate:     pgconv.DateToPgtype(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			Amount:      50000,
			Currency:    "eur",
			Status:      "paid",
			PaidAt:      pgconv.TimeToPgtype(paidAt),
		},
		{
			ID:       uuid.New(),
			LeaseID:  leaseID,
			Sequence: 2,
			Amount:   50000,
			Currency: "eur",
			Status:   "awaiting",
			PaidAt:   pgtype.Timestamptz{},
		},
	}, nil)

	views, err := NewLeaseReadStore(mockQueries, nil).ListInvoicesByLease(context.Background(), leaseID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int32(1), views[0].Sequence)
	require.NotNil(t, views[0].PaidAt)
	assert.True(t, paidAt.Equal(*views[0].PaidAt))
	assert.Nil(t, views[1].PaidAt)
	mockQueries.AssertExpectations(t)
}
