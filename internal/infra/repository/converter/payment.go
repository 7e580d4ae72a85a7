package converter

import (
	"furnished-lease-engine/internal/domain/payment"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DepositAttemptToInfra(p *payment.Payment) sqlc.UpsertDepositAttemptParams {
	payer := p.Payer()
	return sqlc.UpsertDepositAttemptParams{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		ExternalRef:   p.ExternalRef(),
		PayerName:     payer.Name,
		PayerEmail:    payer.Email,
		PayerPhone:    payer.Phone,
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func SettlementToInfra(p *payment.Payment) sqlc.SettlePaymentParams {
	reason := pgtype.Text{Valid: false}
	if p.FailureReason() != "" {
		reason = pgconv.StringToPgtype(p.FailureReason())
	}
	return sqlc.SettlePaymentParams{
		ID:            p.ID(),
		Status:        p.Status().String(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		FailureReason: reason,
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromInfra(row sqlc.Payment) *payment.Payment {
	var period *payment.BillingPeriod
	if row.BillingPeriodStart.Valid && row.BillingPeriodEnd.Valid {
		period = &payment.BillingPeriod{
			Start: pgconv.DateFromPgtype(row.BillingPeriodStart),
			End:   pgconv.DateFromPgtype(row.BillingPeriodEnd),
		}
	}
	var reason string
	if row.FailureReason.Valid {
		reason = row.FailureReason.String
	}

	return payment.ReconstructPayment(
		row.ID,
		row.ReservationID,
		payment.Kind(row.Kind),
		row.Amount,
		row.Currency,
		payment.Status(row.Status),
		row.ExternalRef,
		payment.Payer{Name: row.PayerName, Email: row.PayerEmail, Phone: row.PayerPhone},
		period,
		reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
