//go:build unit || e2e

package builder

import (
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/domain/rent"
	reqdto "furnished-lease-engine/internal/handler/dto/request"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeaseBuilder struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	PaymentID     uuid.UUID
	TenantID      uuid.UUID
	TenantName    string
	TenantEmail   string
	UnitID        uuid.UUID
	PropertyID    uuid.UUID
	Label         string
	Address       string
	StartDate     time.Time
	EndDate       time.Time
	MonthlyRent   int64
	Deposit       int64
	Currency      string
	ExternalRef   string
	CreatedAt     time.Time
}

func NewLeaseBuilder() *LeaseBuilder {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return &LeaseBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		PaymentID:     uuid.New(),
		TenantID:      uuid.New(),
		TenantName:    "Jeanne Martin",
		TenantEmail:   "jeanne@example.com",
		UnitID:        uuid.New(),
		PropertyID:    uuid.New(),
		Label:         "Room A",
		Address:       "12 rue des Lilas, Lyon",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent:   50000,
		Deposit:       100000,
		Currency:      "eur",
		ExternalRef:   "chrg_test_5xq2",
		CreatedAt:     now,
	}
}

func (b *LeaseBuilder) With(mutate func(*LeaseBuilder)) *LeaseBuilder {
	mutate(b)
	return b
}

func (b *LeaseBuilder) BuildDomain() *lease.Contract {
	return lease.ReconstructContract(
		b.ID, b.ReservationID, b.PaymentID,
		lease.TenantSnapshot{ID: b.TenantID, Name: b.TenantName, Email: b.TenantEmail},
		b.targetSnapshot(),
		b.StartDate, b.EndDate,
		b.MonthlyRent, b.Deposit,
		b.Currency,
		lease.StatusActive,
		nil,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *LeaseBuilder) BuildInvoices() []*rent.Invoice {
	invoices, err := rent.GenerateSchedule(b.BuildDomain(), b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return invoices
}

func (b *LeaseBuilder) BuildPayment() *payment.Payment {
	return payment.ReconstructPayment(
		b.PaymentID, b.ReservationID,
		payment.KindDeposit,
		b.Deposit, b.Currency,
		payment.StatusCompleted,
		b.ExternalRef,
		payment.Payer{Name: b.TenantName, Email: b.TenantEmail},
		nil, "",
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *LeaseBuilder) BuildResult(created bool, cancelled ...uuid.UUID) *commands.LeaseResult {
	return &commands.LeaseResult{
		Lease:     b.BuildDomain(),
		Invoices:  b.BuildInvoices(),
		Payment:   b.BuildPayment(),
		Created:   created,
		Cancelled: cancelled,
	}
}

func (b *LeaseBuilder) BuildViewQuery() *queries.LeaseView {
	return &queries.LeaseView{
		ID:              b.ID,
		ReservationID:   b.ReservationID,
		PaymentID:       b.PaymentID,
		TenantID:        b.TenantID,
		TenantName:      b.TenantName,
		TenantEmail:     b.TenantEmail,
		TargetKind:      "unit",
		TargetID:        b.UnitID,
		PropertyID:      b.PropertyID,
		TargetLabel:     b.Label,
		TargetAddress:   b.Address,
		TargetSurfaceM2: 14,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		MonthlyRent:     b.MonthlyRent,
		Deposit:         b.Deposit,
		Currency:        b.Currency,
		Status:          string(lease.StatusActive),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *LeaseBuilder) BuildInvoiceViews() []*queries.InvoiceView {
	invoices := b.BuildInvoices()
	views := make([]*queries.InvoiceView, len(invoices))
	for i, inv := range invoices {
		views[i] = &queries.InvoiceView{
			ID:          inv.ID(),
			LeaseID:     inv.LeaseID(),
			Sequence:    int32(inv.Sequence()), // #nosec G115
			PeriodStart: inv.PeriodStart(),
			PeriodEnd:   inv.PeriodEnd(),
			DueDate:     inv.DueDate(),
			Amount:      inv.Amount(),
			Currency:    inv.Currency(),
			Status:      string(inv.Status()),
		}
	}
	return views
}

func (b *LeaseBuilder) BuildConfirmRequestDTO() reqdto.ConfirmPaymentRequest {
	amount := b.Deposit
	return reqdto.ConfirmPaymentRequest{
		ExternalRef: b.ExternalRef,
		Amount:      &amount,
		Currency:    "EUR",
		PayerName:   b.TenantName,
		PayerEmail:  b.TenantEmail,
	}
}

func (b *LeaseBuilder) BuildWebhookRequestDTO() reqdto.PaymentWebhookRequest {
	amount := b.Deposit
	return reqdto.PaymentWebhookRequest{
		ReservationID: b.ReservationID,
		ExternalRef:   b.ExternalRef,
		Amount:        &amount,
	}
}

func (b *LeaseBuilder) targetSnapshot() lease.TargetSnapshot {
	return lease.TargetSnapshot{
		Kind:        "unit",
		ID:          b.UnitID,
		PropertyID:  b.PropertyID,
		Label:       b.Label,
		Address:     b.Address,
		SurfaceM2:   14,
		MonthlyRent: b.MonthlyRent,
		Currency:    b.Currency,
	}
}
