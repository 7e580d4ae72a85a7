package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"furnished-lease-engine/internal/domain/payment"

	"github.com/google/uuid"
)

type GatewayStatus string

const (
	GatewaySuccessful GatewayStatus = "successful"
	GatewayFailed     GatewayStatus = "failed"
	GatewayPending    GatewayStatus = "pending"
)

// GatewayResult is what the payment provider reports for a transaction reference.
type GatewayResult struct {
	Status        GatewayStatus
	Amount        int64
	Currency      string
	FailureReason string
	// ReservationID is the reservation the provider has the charge tagged with, empty when untagged.
	ReservationID string
}

// PaymentGateway looks up a transaction at the provider. Any returned error is treated as transient.
type PaymentGateway interface {
	LookupTransactionStatus(ctx context.Context, externalRef string) (*GatewayResult, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event string, payload map[string]any) error
}

// DocumentRenderer produces the lease document and returns a reference to it.
type DocumentRenderer interface {
	RenderLeaseDocument(ctx context.Context, leaseID uuid.UUID) (string, error)
}

// OutboxKicker wakes the outbox dispatcher after a commit. It must not block.
type OutboxKicker interface {
	Kick()
}

// PaymentAssertion is the caller's claim that a deposit was paid.
type PaymentAssertion struct {
	ExternalRef    string
	DeclaredAmount int64
	Currency       string
	Payer          payment.Payer
}
