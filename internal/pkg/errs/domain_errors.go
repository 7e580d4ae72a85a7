package errs

import "errors"

// Outcomes of a payment confirmation as seen by callers of the lease engine.
var (
	// Transient: the gateway could not be reached or answered garbage. Safe to retry.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// Conclusive: the payment did not succeed. Reservation stays pending.
	ErrPaymentRejected = errors.New("payment rejected")

	// Conclusive: the reservation was no longer pending (cancelled, expired, or lost to a competitor).
	ErrInvalidTransition = errors.New("invalid reservation transition")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrLeaseNotFound       = errors.New("lease not found")
	ErrTargetNotFound      = errors.New("rental target not found")
	ErrInvoiceNotFound     = errors.New("rent invoice not found")

	// The invoice is already in a state that forbids the requested change.
	ErrInvoiceTransition = errors.New("invalid rent invoice transition")
)

var (
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
