package api

import (
	"net/http"

	reqdto "furnished-lease-engine/internal/handler/dto/request"
	resdto "furnished-lease-engine/internal/handler/dto/response"
	"furnished-lease-engine/internal/handler/httperr"
	"furnished-lease-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	leases commands.LeaseCommands
}

func NewPaymentHandler(leases commands.LeaseCommands) *PaymentHandler {
	return &PaymentHandler{leases: leases}
}

// @Summary Confirm deposit payment
// @Description Confirm the deposit for a pending reservation and materialize its lease
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Payment assertion"
// @Success 201 {object} resdto.PaymentConfirmationResponse
// @Success 200 {object} resdto.PaymentConfirmationResponse "Already confirmed"
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations/{id}/payment-confirmations [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.leases.ProcessPaymentConfirmation(c.Request.Context(), reservationID, req.ToAssertion())
	if err != nil {
		abortWithCommandError(c, err)
		return
	}

	respondConfirmation(c, result)
}

// @Summary Payment provider webhook
// @Description Same operation as the confirmation endpoint, keyed by the reservation id in the body
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Webhook payload"
// @Success 201 {object} resdto.PaymentConfirmationResponse
// @Success 200 {object} resdto.PaymentConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.leases.ProcessPaymentConfirmation(c.Request.Context(), req.ReservationID, req.ToAssertion())
	if err != nil {
		abortWithCommandError(c, err)
		return
	}

	respondConfirmation(c, result)
}

func respondConfirmation(c *gin.Context, result *commands.LeaseResult) {
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromLeaseResult(result))
}
