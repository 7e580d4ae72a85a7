package api

import (
	"net/http"

	resdto "furnished-lease-engine/internal/handler/dto/response"
	"furnished-lease-engine/internal/handler/httperr"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeaseHandler struct {
	invoices commands.InvoiceCommands
	q        queries.LeaseQueries
}

func NewLeaseHandler(invoices commands.InvoiceCommands, q queries.LeaseQueries) *LeaseHandler {
	return &LeaseHandler{invoices: invoices, q: q}
}

// @Summary Get lease
// @Tags leases
// @Produce json
// @Param id path string true "Lease ID"
// @Success 200 {object} resdto.LeaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/leases/{id} [get]
func (h *LeaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	res, err := resdto.FromLeaseView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get lease by reservation
// @Tags leases
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.LeaseResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/lease [get]
func (h *LeaseHandler) GetByReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByReservationID(c.Request.Context(), id)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	res, err := resdto.FromLeaseView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List rent invoices of a lease
// @Tags leases
// @Produce json
// @Param id path string true "Lease ID"
// @Success 200 {array} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/leases/{id}/invoices [get]
func (h *LeaseHandler) ListInvoices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.ListInvoices(c.Request.Context(), id)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	res, err := resdto.FromInvoiceViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Mark invoice paid
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/invoices/{id}/mark-paid [post]
func (h *LeaseHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	inv, err := h.invoices.MarkPaid(c.Request.Context(), id)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}
