package converter

import (
	"furnished-lease-engine/internal/domain/lease"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
)

func LeaseToInfra(c *lease.Contract) sqlc.InsertLeaseContractParams {
	tenant := c.Tenant()
	target := c.Target()
	return sqlc.InsertLeaseContractParams{
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
		StartDate:       pgconv.DateToPgtype(c.StartDate()),
		EndDate:         pgconv.DateToPgtype(c.EndDate()),
		MonthlyRent:     c.MonthlyRent(),
		Deposit:         c.Deposit(),
		Currency:        c.Currency(),
		Status:          string(c.Status()),
		DocumentRef:     pgconv.StringPtrToPgtype(c.DocumentRef()),
		CreatedAt:       pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

// The stored deposit is the computed one; the snapshot's optional override is not persisted separately.
func LeaseFromInfra(row sqlc.LeaseContract) *lease.Contract {
	deposit := row.Deposit
	return lease.ReconstructContract(
		row.ID,
		row.ReservationID,
		row.PaymentID,
		lease.TenantSnapshot{ID: row.TenantID, Name: row.TenantName, Email: row.TenantEmail},
		lease.TargetSnapshot{
			Kind:          row.TargetKind,
			ID:            row.TargetID,
			PropertyID:    row.PropertyID,
			Label:         row.TargetLabel,
			Address:       row.TargetAddress,
			SurfaceM2:     row.TargetSurfaceM2,
			MonthlyRent:   row.MonthlyRent,
			DepositAmount: &deposit,
			Currency:      row.Currency,
		},
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		row.MonthlyRent,
		row.Deposit,
		row.Currency,
		lease.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.DocumentRef),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
