package rent

import (
	"errors"
	"time"

	"furnished-lease-engine/internal/domain/lease"

	"github.com/google/uuid"
)

var ErrEmptyLeasePeriod = errors.New("lease period is empty")

// GenerateSchedule partitions [start, end) into calendar-month intervals, the last one
// clipped to end, and bills each at the full monthly rent due on the interval start.
// A lease shorter than a month still yields one full-rent invoice.
func GenerateSchedule(l *lease.Contract, now time.Time) ([]*Invoice, error) {
	start, end := l.StartDate(), l.EndDate()
	if !start.Before(end) {
		return nil, ErrEmptyLeasePeriod
	}

	invoices := make([]*Invoice, 0, MonthsSpanned(start, end))
	for k := 0; ; k++ {
		cursor := AddMonths(start, k)
		if !cursor.Before(end) {
			break
		}
		next := AddMonths(start, k+1)
		if next.After(end) {
			next = end
		}
		invoices = append(invoices, &Invoice{
			id:          uuid.New(),
			leaseID:     l.ID(),
			sequence:    k + 1,
			periodStart: cursor,
			periodEnd:   next,
			dueDate:     cursor,
			amount:      l.MonthlyRent(),
			currency:    l.Currency(),
			status:      InvoiceAwaiting,
			createdAt:   now,
			updatedAt:   now,
		})
	}
	return invoices, nil
}

// AddMonths adds k calendar months to t, clamping to the last day of the resulting month
// (Jan 31 + 1 month = Feb 28/29). Always offset from the same anchor so clamping never drifts.
func AddMonths(t time.Time, k int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(k), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// MonthsSpanned is ceil(months between start and end), i.e. the invoice count.
func MonthsSpanned(start, end time.Time) int {
	if !start.Before(end) {
		return 0
	}
	n := 0
	for AddMonths(start, n).Before(end) {
		n++
	}
	return n
}
