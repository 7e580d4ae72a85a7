//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
	"furnished-lease-engine/tests/common/builder"
	repositorymock "furnished-lease-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func leaseRow(p sqlc.InsertLeaseContractParams) sqlc.LeaseContract {
	return sqlc.LeaseContract{
		ID:              p.ID,
		ReservationID:   p.ReservationID,
		PaymentID:       p.PaymentID,
		TenantID:        p.TenantID,
		TenantName:      p.TenantName,
		TenantEmail:     p.TenantEmail,
		TargetKind:      p.TargetKind,
		TargetID:        p.TargetID,
		PropertyID:      p.PropertyID,
		TargetLabel:     p.TargetLabel,
		TargetAddress:   p.TargetAddress,
		TargetSurfaceM2: p.TargetSurfaceM2,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		MonthlyRent:     p.MonthlyRent,
		Deposit:         p.Deposit,
		Currency:        p.Currency,
		Status:          p.Status,
		DocumentRef:     p.DocumentRef,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// =============================================================================
// CreateIfAbsent Tests
// =============================================================================

func TestLeaseRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("success: inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockLeaseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewLeaseRepository(mockQueries, mockDB)

		c := builder.NewLeaseBuilder().BuildDomain()
		mockQueries.EXPECT().InsertLeaseContract(ctx, mockDB, converter.LeaseToInfra(c)).Return(int64(1), nil)

		got, created, err := repo.CreateIfAbsent(ctx, mockDB, c)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, c.ID(), got.ID())
	})

	t.Run("success: existing contract for the reservation is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockLeaseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewLeaseRepository(mockQueries, mockDB)

		existing := builder.NewLeaseBuilder().BuildDomain()
		duplicate := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
			b.ReservationID = existing.ReservationID()
		}).BuildDomain()

		mockQueries.EXPECT().InsertLeaseContract(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
		mockQueries.EXPECT().
			GetLeaseByReservationID(ctx, mockDB, existing.ReservationID()).
			Return(leaseRow(converter.LeaseToInfra(existing)), nil)

		got, created, err := repo.CreateIfAbsent(ctx, mockDB, duplicate)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID(), got.ID())
		assert.Equal(t, existing.StartDate(), got.StartDate())
		assert.Equal(t, existing.MonthlyRent(), got.MonthlyRent())
	})

	t.Run("error: insert failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockLeaseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewLeaseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertLeaseContract(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("disk full"))

		got, created, err := repo.CreateIfAbsent(ctx, mockDB, builder.NewLeaseBuilder().BuildDomain())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.False(t, created)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Lookup and Document Tests
// =============================================================================

func TestLeaseRepository_FindByIDForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockLeaseWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLeaseRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().GetLeaseForUpdate(ctx, mockDB, id).Return(sqlc.LeaseContract{}, pgx.ErrNoRows)

	got, err := repo.FindByIDForUpdate(ctx, mockDB, id)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestLeaseRepository_SetDocumentRef(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: ref stored", affected: 1},
		{name: "error: a different ref is already stored", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database failure", queryErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockLeaseWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLeaseRepository(mockQueries, mockDB)

			c := builder.NewLeaseBuilder().BuildDomain()
			_, err := c.AttachDocument("leases/a.pdf", c.CreatedAt())
			require.NoError(t, err)

			mockQueries.EXPECT().
				SetLeaseDocumentRef(ctx, mockDB, sqlc.SetLeaseDocumentRefParams{
					ID:          c.ID(),
					DocumentRef: pgconv.StringToPgtype("leases/a.pdf"),
					UpdatedAt:   pgconv.TimeToPgtype(c.UpdatedAt()),
				}).
				Return(tc.affected, tc.queryErr)

			err = repo.SetDocumentRef(ctx, mockDB, c)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
