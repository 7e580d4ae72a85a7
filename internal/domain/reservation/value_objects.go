package reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TargetKind string

const (
	TargetProperty TargetKind = "property"
	TargetUnit     TargetKind = "unit"
)

// Target is the property or rental unit a reservation holds. Exactly one id is set.
type Target struct {
	propertyID *uuid.UUID
	unitID     *uuid.UUID
}

func NewTarget(propertyID, unitID *uuid.UUID) (Target, error) {
	hasProperty := propertyID != nil && *propertyID != uuid.Nil
	hasUnit := unitID != nil && *unitID != uuid.Nil
	if hasProperty == hasUnit {
		return Target{}, ErrInvalidTarget
	}
	if hasProperty {
		return PropertyTarget(*propertyID), nil
	}
	return UnitTarget(*unitID), nil
}

func PropertyTarget(id uuid.UUID) Target {
	return Target{propertyID: &id}
}

func UnitTarget(id uuid.UUID) Target {
	return Target{unitID: &id}
}

func (t Target) Kind() TargetKind {
	if t.unitID != nil {
		return TargetUnit
	}
	return TargetProperty
}

func (t Target) ID() uuid.UUID {
	if t.unitID != nil {
		return *t.unitID
	}
	if t.propertyID != nil {
		return *t.propertyID
	}
	return uuid.Nil
}

func (t Target) PropertyID() *uuid.UUID { return t.propertyID }
func (t Target) UnitID() *uuid.UUID     { return t.unitID }

func (t Target) IsZero() bool {
	return t.propertyID == nil && t.unitID == nil
}

func (t Target) Equal(other Target) bool {
	return t.Kind() == other.Kind() && t.ID() == other.ID()
}

// LockKey scopes calendar locking to the target, never to a single reservation.
func (t Target) LockKey() string {
	return fmt.Sprintf("%s:%s", t.Kind(), t.ID())
}

func (t Target) String() string {
	return t.LockKey()
}

// DateRange is the half-open interval [start, end) of calendar days in UTC.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := TruncateToDate(start), TruncateToDate(end)
	if !s.Before(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func MustDateRange(start, end time.Time) DateRange {
	r, err := NewDateRange(start, end)
	if err != nil {
		panic(fmt.Sprintf("invalid date range %s..%s: %v", start, end, err))
	}
	return r
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
