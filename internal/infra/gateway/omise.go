package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/commands"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

var ErrMalformedResponse = errs.New("malformed gateway response")

// MetadataReservationKey is the charge metadata key the checkout sets to the reservation id.
const MetadataReservationKey = "reservation_id"

// ChargeRetriever is the slice of the Omise API the lease engine depends on.
type ChargeRetriever interface {
	RetrieveCharge(ctx context.Context, chargeID string) (*omise.Charge, error)
}

type omiseRetriever struct {
	client *omise.Client
}

func NewOmiseClient(publicKey, secretKey string, timeout time.Duration) (*omise.Client, error) {
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, errs.Wrap(err, "create omise client")
	}
	if timeout > 0 {
		c.Client.Timeout = timeout
	}
	return c, nil
}

func NewOmiseRetriever(client *omise.Client) ChargeRetriever {
	return &omiseRetriever{client: client}
}

// RetrieveCharge runs the blocking SDK call off the caller's goroutine so ctx cancellation is honored.
func (r *omiseRetriever) RetrieveCharge(ctx context.Context, chargeID string) (*omise.Charge, error) {
	type reply struct {
		charge *omise.Charge
		err    error
	}
	done := make(chan reply, 1)

	go func() {
		ch := &omise.Charge{}
		err := r.client.Do(ch, &operations.RetrieveCharge{ChargeID: chargeID})
		done <- reply{charge: ch, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case rep := <-done:
		return rep.charge, rep.err
	}
}

// OmiseGateway answers transaction lookups from Omise charges.
type OmiseGateway struct {
	charges ChargeRetriever
}

func NewOmiseGateway(charges ChargeRetriever) *OmiseGateway {
	return &OmiseGateway{charges: charges}
}

func (g *OmiseGateway) LookupTransactionStatus(ctx context.Context, externalRef string) (*commands.GatewayResult, error) {
	ch, err := g.charges.RetrieveCharge(ctx, externalRef)
	if err != nil {
		var apiErr *omise.Error
		if errors.As(err, &apiErr) && isChargeVerdict(apiErr.StatusCode) {
			// the provider answered: the reference is unknown or not ours
			slog.Warn("omise rejected charge lookup",
				"external_ref", externalRef,
				"status_code", apiErr.StatusCode,
				"code", apiErr.Code)
			return &commands.GatewayResult{
				Status:        commands.GatewayFailed,
				FailureReason: "gateway: " + apiErr.Code,
			}, nil
		}
		return nil, errs.Wrap(err, "retrieve omise charge")
	}

	return chargeToResult(ch)
}

// isChargeVerdict reports whether a provider error says something about the charge itself.
// Credential errors and throttling are about us and stay retryable.
func isChargeVerdict(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return false
	}
	return status >= 400 && status < 500
}

func reservationOf(ch *omise.Charge) string {
	if v, ok := ch.Metadata[MetadataReservationKey].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func chargeToResult(ch *omise.Charge) (*commands.GatewayResult, error) {
	if ch == nil || ch.ID == "" {
		return nil, ErrMalformedResponse
	}

	switch string(ch.Status) {
	case "successful":
		return &commands.GatewayResult{
			Status:        commands.GatewaySuccessful,
			Amount:        ch.Amount,
			Currency:      strings.ToLower(ch.Currency),
			ReservationID: reservationOf(ch),
		}, nil
	case "failed", "reversed", "expired":
		reason := string(ch.Status)
		if ch.FailureCode != nil && *ch.FailureCode != "" {
			reason = *ch.FailureCode
		}
		if ch.FailureMessage != nil && *ch.FailureMessage != "" {
			reason += ": " + *ch.FailureMessage
		}
		return &commands.GatewayResult{
			Status:        commands.GatewayFailed,
			Amount:        ch.Amount,
			Currency:      strings.ToLower(ch.Currency),
			FailureReason: reason,
			ReservationID: reservationOf(ch),
		}, nil
	case "pending":
		return &commands.GatewayResult{Status: commands.GatewayPending}, nil
	default:
		return nil, errs.Wrapf(ErrMalformedResponse, "unknown charge status %q", ch.Status)
	}
}
