package repository

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/payment.go -package=repositorymock

import (
	"context"

	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/infra/repository/converter"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	UpsertDepositAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDepositAttemptParams) (sqlc.Payment, error)
	SettlePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.SettlePaymentParams) (sqlc.Payment, error)
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payment, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) UpsertAttempt(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error) {
	row, err := r.queries.UpsertDepositAttempt(ctx, tx, converter.DepositAttemptToInfra(p))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record payment attempt", err)
	}
	return converter.PaymentFromInfra(row), nil
}

func (r *PaymentRepository) Settle(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error) {
	row, err := r.queries.SettlePayment(ctx, tx, converter.SettlementToInfra(p))
	if err == nil {
		return converter.PaymentFromInfra(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to settle payment", err)
	}

	// already final: hand back what is stored
	stored, err := r.queries.GetPaymentByID(ctx, tx, p.ID())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to reload payment", err)
	}
	return converter.PaymentFromInfra(stored), nil
}
