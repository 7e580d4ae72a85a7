//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTargetReadQueries struct {
	mock.Mock
}

func (m *MockTargetReadQueries) GetUnitSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUnitSnapshotRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetUnitSnapshotRow), args.Error(1)
}

func (m *MockTargetReadQueries) GetPropertySnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertySnapshotRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetPropertySnapshotRow), args.Error(1)
}

func (m *MockTargetReadQueries) GetTenantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tenant, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Tenant), args.Error(1)
}

func TestFindTarget(t *testing.T) {
	unitID := uuid.New()
	propertyID := uuid.New()

	unitRow := sqlc.GetUnitSnapshotRow{
		ID:            unitID,
		PropertyID:    propertyID,
		Label:         "Room A",
		Address:       "12 rue des Lilas, Lyon",
		SurfaceM2:     14,
		MonthlyRent:   50000,
		DepositAmount: pgtype.Int8{Int64: 80000, Valid: true},
		Currency:      "eur",
	}
	propertyRow := sqlc.GetPropertySnapshotRow{
		ID:          propertyID,
		Name:        "Rue des Lilas",
		Address:     "12 rue des Lilas, Lyon",
		SurfaceM2:   85,
		MonthlyRent: 120000,
		Currency:    "eur",
	}

	tests := []struct {
		name        string
		target      reservation.Target
		setup       func(m *MockTargetReadQueries)
		wantKind    string
		wantLabel   string
		wantRent    int64
		wantDeposit *int64
		wantErrKind infra.RepositoryErrorKind
	}{
		{
			name:   "unit snapshot carries its deposit override",
			target: reservation.UnitTarget(unitID),
			setup: func(m *MockTargetReadQueries) {
				m.On("GetUnitSnapshot", mock.Anything, mock.Anything, unitID).Return(unitRow, nil)
			},
			wantKind:    "unit",
			wantLabel:   "Room A",
			wantRent:    50000,
			wantDeposit: func() *int64 { v := int64(80000); return &v }(),
		},
		{
			name:   "whole property",
			target: reservation.PropertyTarget(propertyID),
			setup: func(m *MockTargetReadQueries) {
				m.On("GetPropertySnapshot", mock.Anything, mock.Anything, propertyID).Return(propertyRow, nil)
			},
			wantKind:  "property",
			wantLabel: "Rue des Lilas",
			wantRent:  120000,
		},
		{
			name:   "unknown unit",
			target: reservation.UnitTarget(unitID),
			setup: func(m *MockTargetReadQueries) {
				m.On("GetUnitSnapshot", mock.Anything, mock.Anything, unitID).Return(sqlc.GetUnitSnapshotRow{}, sql.ErrNoRows)
			},
			wantErrKind: infra.KindNotFound,
		},
		{
			name:   "property lookup failure",
			target: reservation.PropertyTarget(propertyID),
			setup: func(m *MockTargetReadQueries) {
				m.On("GetPropertySnapshot", mock.Anything, mock.Anything, propertyID).Return(sqlc.GetPropertySnapshotRow{}, errors.New("connection reset"))
			},
			wantErrKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockTargetReadQueries)
			tt.setup(mockQueries)
			store := NewTargetReadStore(mockQueries, nil)

			snap, err := store.FindTarget(context.Background(), tt.target)

			if tt.wantErrKind != "" {
				require.Error(t, err)
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, tt.wantErrKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantKind, snap.Kind)
				assert.Equal(t, tt.wantLabel, snap.Label)
				assert.Equal(t, tt.wantRent, snap.MonthlyRent)
				assert.Equal(t, propertyID, snap.PropertyID)
				assert.Equal(t, tt.wantDeposit, snap.DepositAmount)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindTenant(t *testing.T) {
	id := uuid.New()

	t.Run("phone is optional", func(t *testing.T) {
		mockQueries := new(MockTargetReadQueries)
		mockQueries.On("GetTenantByID", mock.Anything, mock.Anything, id).Return(sqlc.Tenant{
			ID:    id,
			Name:  "Jeanne Martin",
			Email: "jeanne@example.com",
		}, nil)

		snap, err := NewTargetReadStore(mockQueries, nil).FindTenant(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Jeanne Martin", snap.Name)
		assert.Empty(t, snap.Phone)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		mockQueries := new(MockTargetReadQueries)
		mockQueries.On("GetTenantByID", mock.Anything, mock.Anything, id).Return(sqlc.Tenant{}, sql.ErrNoRows)

		snap, err := NewTargetReadStore(mockQueries, nil).FindTenant(context.Background(), id)
		assert.Nil(t, snap)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
