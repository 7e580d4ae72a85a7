package lease

import "github.com/google/uuid"

type Status string

const (
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusTerminated
}

// TenantSnapshot freezes who signed the lease.
type TenantSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// TargetSnapshot freezes the rented property or unit as it was at validation time.
// Later edits to the listing never reach an existing contract.
type TargetSnapshot struct {
	Kind          string
	ID            uuid.UUID
	PropertyID    uuid.UUID
	Label         string
	Address       string
	SurfaceM2     float64
	MonthlyRent   int64
	DepositAmount *int64
	Currency      string
}

// DepositPolicy computes the deposit server-side. The payer's declared amount is never trusted for it.
type DepositPolicy struct {
	Months int64
}

func (p DepositPolicy) DepositFor(t TargetSnapshot) int64 {
	if t.DepositAmount != nil && *t.DepositAmount >= 0 {
		return *t.DepositAmount
	}
	if p.Months <= 0 {
		return 0
	}
	return t.MonthlyRent * p.Months
}
