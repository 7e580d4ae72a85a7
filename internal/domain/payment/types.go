package payment

type Kind string

const (
	KindDeposit     Kind = "deposit"
	KindMonthlyRent Kind = "monthly_rent"
)

func (k Kind) IsValid() bool {
	return k == KindDeposit || k == KindMonthlyRent
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the row may no longer be mutated by the confirmation path.
func (s Status) IsFinal() bool {
	return s != StatusPending
}
