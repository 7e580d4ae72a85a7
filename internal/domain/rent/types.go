package rent

type InvoiceStatus string

const (
	InvoiceAwaiting InvoiceStatus = "awaiting"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceOverdue  InvoiceStatus = "overdue"
)

var validInvoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceAwaiting: {InvoicePaid, InvoiceOverdue},
	InvoiceOverdue:  {InvoicePaid},
	InvoicePaid:     {},
}

func (s InvoiceStatus) IsValid() bool {
	_, ok := validInvoiceTransitions[s]
	return ok
}

func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	for _, allowed := range validInvoiceTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
