package converter

import (
	"fmt"
	"math"

	"furnished-lease-engine/internal/domain/rent"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
)

func InvoicesToInfra(invs []*rent.Invoice) []sqlc.InsertRentInvoicesParams {
	out := make([]sqlc.InsertRentInvoicesParams, 0, len(invs))
	for _, inv := range invs {
		seq := inv.Sequence()
		if seq > math.MaxInt32 {
			panic(fmt.Sprintf("invoice sequence out of int32 range: %d", seq))
		}
		out = append(out, sqlc.InsertRentInvoicesParams{
			ID:          inv.ID(),
			LeaseID:     inv.LeaseID(),
			Sequence:    int32(seq), // #nosec G115 -- bounded above
			PeriodStart: pgconv.DateToPgtype(inv.PeriodStart()),
			PeriodEnd:   pgconv.DateToPgtype(inv.PeriodEnd()),
			DueDate:     pgconv.DateToPgtype(inv.DueDate()),
			Amount:      inv.Amount(),
			Currency:    inv.Currency(),
			Status:      string(inv.Status()),
			PaidAt:      pgconv.TimePtrToPgtype(inv.PaidAt()),
			CreatedAt:   pgconv.TimeToPgtype(inv.CreatedAt()),
			UpdatedAt:   pgconv.TimeToPgtype(inv.UpdatedAt()),
		})
	}
	return out
}

func InvoiceStatusToInfra(inv *rent.Invoice) sqlc.UpdateInvoiceStatusParams {
	return sqlc.UpdateInvoiceStatusParams{
		ID:        inv.ID(),
		Status:    string(inv.Status()),
		PaidAt:    pgconv.TimePtrToPgtype(inv.PaidAt()),
		UpdatedAt: pgconv.TimeToPgtype(inv.UpdatedAt()),
	}
}

func InvoiceFromInfra(row sqlc.RentInvoice) *rent.Invoice {
	return rent.ReconstructInvoice(
		row.ID,
		row.LeaseID,
		int(row.Sequence),
		pgconv.DateFromPgtype(row.PeriodStart),
		pgconv.DateFromPgtype(row.PeriodEnd),
		pgconv.DateFromPgtype(row.DueDate),
		row.Amount,
		row.Currency,
		rent.InvoiceStatus(row.Status),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func InvoicesFromInfra(rows []sqlc.RentInvoice) []*rent.Invoice {
	out := make([]*rent.Invoice, 0, len(rows))
	for _, row := range rows {
		out = append(out, InvoiceFromInfra(row))
	}
	return out
}
