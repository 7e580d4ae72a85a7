package response

import (
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LeaseResponse struct {
	ID              uuid.UUID `json:"id"`
	ReservationID   uuid.UUID `json:"reservationId"`
	PaymentID       uuid.UUID `json:"paymentId"`
	TenantID        uuid.UUID `json:"tenantId"`
	TenantName      string    `json:"tenantName"`
	TenantEmail     string    `json:"tenantEmail"`
	TargetKind      string    `json:"targetKind"`
	TargetID        uuid.UUID `json:"targetId"`
	PropertyID      uuid.UUID `json:"propertyId"`
	TargetLabel     string    `json:"targetLabel"`
	TargetAddress   string    `json:"targetAddress"`
	TargetSurfaceM2 float64   `json:"targetSurfaceM2"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	MonthlyRent     int64     `json:"monthlyRent"`
	Deposit         int64     `json:"deposit"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	DocumentRef     *string   `json:"documentRef,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type InvoiceResponse struct {
	ID          uuid.UUID  `json:"id"`
	LeaseID     uuid.UUID  `json:"leaseId"`
	Sequence    int32      `json:"sequence"`
	PeriodStart string     `json:"periodStart"`
	PeriodEnd   string     `json:"periodEnd"`
	DueDate     string     `json:"dueDate"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

type PaymentConfirmationResponse struct {
	Lease                 *LeaseResponse     `json:"lease"`
	Invoices              []*InvoiceResponse `json:"invoices"`
	PaymentID             *uuid.UUID         `json:"paymentId,omitempty"`
	Created               bool               `json:"created"`
	CancelledReservations []uuid.UUID        `json:"cancelledReservations"`
}

// calendar dates travel as YYYY-MM-DD, timestamps as RFC 3339
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errs.Newf("expected time.Time, got %T", src)
				}
				return t.Format(time.DateOnly), nil
			},
		},
	},
}

func FromLeaseView(v *queries.LeaseView) (*LeaseResponse, error) {
	res := &LeaseResponse{}
	if err := copier.CopyWithOption(res, v, viewCopyOption); err != nil {
		return nil, err
	}
	return res, nil
}

func FromInvoiceViews(views []*queries.InvoiceView) ([]*InvoiceResponse, error) {
	res := make([]*InvoiceResponse, len(views))
	for i, v := range views {
		item := &InvoiceResponse{}
		if err := copier.CopyWithOption(item, v, viewCopyOption); err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

func FromContract(c *lease.Contract) *LeaseResponse {
	tenant := c.Tenant()
	target := c.Target()
	return &LeaseResponse{
		ID:              c.ID(),
		ReservationID:   c.ReservationID(),
		PaymentID:       c.PaymentID(),
		TenantID:        tenant.ID,
		TenantName:      tenant.Name,
		TenantEmail:     tenant.Email,
		TargetKind:      target.Kind,
		TargetID:        target.ID,
		PropertyID:      target.PropertyID,
		TargetLabel:     target.Label,
		TargetAddress:   target.Address,
		TargetSurfaceM2: target.SurfaceM2,
		StartDate:       c.StartDate().Format(time.DateOnly),
		EndDate:         c.EndDate().Format(time.DateOnly),
		MonthlyRent:     c.MonthlyRent(),
		Deposit:         c.Deposit(),
		Currency:        c.Currency(),
		Status:          string(c.Status()),
		DocumentRef:     c.DocumentRef(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func FromInvoice(inv *rent.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:          inv.ID(),
		LeaseID:     inv.LeaseID(),
		Sequence:    int32(inv.Sequence()), // #nosec G115 -- schedules are bounded by lease length
		PeriodStart: inv.PeriodStart().Format(time.DateOnly),
		PeriodEnd:   inv.PeriodEnd().Format(time.DateOnly),
		DueDate:     inv.DueDate().Format(time.DateOnly),
		Amount:      inv.Amount(),
		Currency:    inv.Currency(),
		Status:      string(inv.Status()),
		PaidAt:      inv.PaidAt(),
	}
}

func FromLeaseResult(r *commands.LeaseResult) *PaymentConfirmationResponse {
	invoices := make([]*InvoiceResponse, len(r.Invoices))
	for i, inv := range r.Invoices {
		invoices[i] = FromInvoice(inv)
	}
	cancelled := r.Cancelled
	if cancelled == nil {
		cancelled = []uuid.UUID{}
	}

	res := &PaymentConfirmationResponse{
		Lease:                 FromContract(r.Lease),
		Invoices:              invoices,
		Created:               r.Created,
		CancelledReservations: cancelled,
	}
	if r.Payment != nil {
		id := r.Payment.ID()
		res.PaymentID = &id
	}
	return res
}
