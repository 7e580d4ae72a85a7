package commands

//go:generate mockgen -source=payment_adapter.go -destination=../../../tests/mock/commands/payment_adapter.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/infra"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// PaymentConfirmer turns a payment assertion into a settled deposit row.
// A nil error means the returned payment is completed. depositDue is enforced against gateway amounts.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, reservationID uuid.UUID, depositDue int64, assertion PaymentAssertion) (*payment.Payment, error)
}

type PaymentSettings struct {
	Mode            config.PaymentMode
	DefaultCurrency string
	GatewayTimeout  time.Duration
}

type paymentConfirmerImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	settings PaymentSettings
	clock    clock.Clock
}

// NewPaymentConfirmer fixes the payment mode for the process. gateway may be nil in sandbox mode.
func NewPaymentConfirmer(uow shared.UnitOfWork, gateway PaymentGateway, settings PaymentSettings, clk clock.Clock) PaymentConfirmer {
	return &paymentConfirmerImpl{
		uow:      uow,
		gateway:  gateway,
		settings: settings,
		clock:    clk,
	}
}

func (c *paymentConfirmerImpl) Confirm(ctx context.Context, reservationID uuid.UUID, depositDue int64, assertion PaymentAssertion) (*payment.Payment, error) {
	currency := assertion.Currency
	if strings.TrimSpace(currency) == "" {
		currency = c.settings.DefaultCurrency
	}

	attempt, err := payment.NewDepositAttempt(
		reservationID,
		assertion.ExternalRef,
		assertion.DeclaredAmount,
		currency,
		assertion.Payer,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var stored *payment.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var uerr error
		stored, uerr = tx.Payments().UpsertAttempt(ctx, tx.DB(), attempt)
		return uerr
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, errs.Mark(errs.Wrapf(err, "external ref %q already settles another reservation", assertion.ExternalRef), errs.ErrPaymentRejected)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// a final row is never re-decided
	if stored.IsFinal() {
		return outcomeOf(stored)
	}

	if err := c.decide(ctx, stored, depositDue, assertion); err != nil {
		return stored, err
	}

	var settled *payment.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var serr error
		settled, serr = tx.Payments().Settle(ctx, tx.DB(), stored)
		return serr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("payment settled",
		"reservation_id", reservationID,
		"payment_id", settled.ID(),
		"status", settled.Status(),
		"mode", c.settings.Mode)

	return outcomeOf(settled)
}

// decide settles p in memory. It returns ErrGatewayUnavailable when p must stay pending.
// Sandbox trusts the declared amount; live requires a charge tagged for this reservation that covers depositDue.
func (c *paymentConfirmerImpl) decide(ctx context.Context, p *payment.Payment, depositDue int64, assertion PaymentAssertion) error {
	now := c.clock.Now()

	if c.settings.Mode == config.PaymentModeSandbox {
		return p.Complete(assertion.DeclaredAmount, now)
	}

	if c.gateway == nil {
		return errs.Mark(errs.New("no payment gateway configured"), errs.ErrGatewayUnavailable)
	}

	lookupCtx := ctx
	if c.settings.GatewayTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, c.settings.GatewayTimeout)
		defer cancel()
	}

	result, err := c.gateway.LookupTransactionStatus(lookupCtx, p.ExternalRef())
	if err != nil {
		slog.Warn("payment gateway lookup failed",
			"payment_id", p.ID(),
			"external_ref", p.ExternalRef(),
			"error", err.Error())
		return errs.Mark(err, errs.ErrGatewayUnavailable)
	}
	if result == nil {
		return errs.Mark(errs.New("empty gateway response"), errs.ErrGatewayUnavailable)
	}

	switch result.Status {
	case GatewaySuccessful:
		if result.Amount < 0 {
			return errs.Mark(errs.Newf("malformed gateway amount %d", result.Amount), errs.ErrGatewayUnavailable)
		}
		if result.Currency != "" && !strings.EqualFold(result.Currency, p.Currency()) {
			slog.Warn("gateway currency differs from declared currency",
				"payment_id", p.ID(),
				"declared", p.Currency(),
				"gateway", result.Currency)
		}
		if reason := chargeMismatch(p, result, depositDue); reason != "" {
			slog.Warn("gateway charge refused for reservation",
				"payment_id", p.ID(),
				"reservation_id", p.ReservationID(),
				"external_ref", p.ExternalRef(),
				"reason", reason)
			return p.Fail(reason, now)
		}
		return p.Complete(result.Amount, now)
	case GatewayFailed:
		reason := result.FailureReason
		if reason == "" {
			reason = "declined by gateway"
		}
		return p.Fail(reason, now)
	case GatewayPending:
		return errs.Mark(errs.New("transaction not settled at gateway yet"), errs.ErrGatewayUnavailable)
	default:
		return errs.Mark(errs.Newf("unknown gateway status %q", result.Status), errs.ErrGatewayUnavailable)
	}
}

func chargeMismatch(p *payment.Payment, result *GatewayResult, depositDue int64) string {
	switch {
	case result.ReservationID == "":
		return "charge carries no reservation reference"
	case !strings.EqualFold(result.ReservationID, p.ReservationID().String()):
		return "charge belongs to reservation " + result.ReservationID
	case result.Amount < depositDue:
		return fmt.Sprintf("charge amount %d below deposit due %d", result.Amount, depositDue)
	}
	return ""
}

func outcomeOf(p *payment.Payment) (*payment.Payment, error) {
	if p.IsCompleted() {
		return p, nil
	}
	return p, errs.Mark(errs.Newf("payment %s is %s: %s", p.ID(), p.Status(), p.FailureReason()), errs.ErrPaymentRejected)
}
