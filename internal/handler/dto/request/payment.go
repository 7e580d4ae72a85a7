package request

import (
	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

// ConfirmPaymentRequest is the payer's claim that the deposit went through.
// The amount is only trusted in sandbox mode.
type ConfirmPaymentRequest struct {
	ExternalRef string `json:"externalRef" binding:"required,max=255"`
	Amount      *int64 `json:"amount" binding:"required,min=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	PayerName   string `json:"payerName" binding:"omitempty,max=255"`
	PayerEmail  string `json:"payerEmail" binding:"omitempty,email"`
	PayerPhone  string `json:"payerPhone" binding:"omitempty,max=32"`
}

func (r *ConfirmPaymentRequest) ToAssertion() commands.PaymentAssertion {
	return commands.PaymentAssertion{
		ExternalRef:    r.ExternalRef,
		DeclaredAmount: *r.Amount,
		Currency:       r.Currency,
		Payer: payment.Payer{
			Name:  r.PayerName,
			Email: r.PayerEmail,
			Phone: r.PayerPhone,
		},
	}
}

// PaymentWebhookRequest is posted by the payment provider integration.
type PaymentWebhookRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	ExternalRef   string    `json:"externalRef" binding:"required,max=255"`
	Amount        *int64    `json:"amount" binding:"required,min=0"`
	Currency      string    `json:"currency" binding:"omitempty,len=3"`
}

func (r *PaymentWebhookRequest) ToAssertion() commands.PaymentAssertion {
	return commands.PaymentAssertion{
		ExternalRef:    r.ExternalRef,
		DeclaredAmount: *r.Amount,
		Currency:       r.Currency,
	}
}
