package reservation

import "github.com/google/uuid"

// ResolveConflicts returns the ids of same-target reservations that must be cancelled
// for `excluding` to take period: every pending reservation whose range overlaps it.
// Validated and terminal reservations are never returned.
func ResolveConflicts(target Target, period DateRange, excluding uuid.UUID, candidates []*Reservation) []uuid.UUID {
	conflicts := make([]uuid.UUID, 0)
	for _, c := range candidates {
		if c == nil || c.id == excluding {
			continue
		}
		if !c.target.Equal(target) || c.status != StatusPending {
			continue
		}
		if c.period.Overlaps(period) {
			conflicts = append(conflicts, c.id)
		}
	}
	return conflicts
}

// FindValidatedOverlap returns a validated reservation on target overlapping period, if any.
func FindValidatedOverlap(target Target, period DateRange, excluding uuid.UUID, candidates []*Reservation) *Reservation {
	for _, c := range candidates {
		if c == nil || c.id == excluding {
			continue
		}
		if c.status == StatusValidated && c.target.Equal(target) && c.period.Overlaps(period) {
			return c
		}
	}
	return nil
}
