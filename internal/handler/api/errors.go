package api

import (
	"net/http"

	"furnished-lease-engine/internal/handler/httperr"
	"furnished-lease-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const gatewayRetryAfterSeconds = "30"

// abortWithCommandError maps usecase sentinels to HTTP responses.
func abortWithCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrLeaseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Lease not found", nil)
	case errs.Is(err, errs.ErrInvoiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found", nil)
	case errs.Is(err, errs.ErrTargetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
	case errs.Is(err, errs.ErrPaymentRejected):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment was rejected, please try paying again", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "This listing is no longer available", nil)
	case errs.Is(err, errs.ErrInvoiceTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invoice can no longer be changed", nil)
	case errs.Is(err, errs.ErrGatewayUnavailable):
		c.Header("Retry-After", gatewayRetryAfterSeconds)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment provider unavailable, please retry", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid payment data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
