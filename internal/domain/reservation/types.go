package reservation

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusValidated Status = "validated"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Validated, cancelled and expired are terminal.
var ValidTransitions = map[Status][]Status{
	StatusPending:   {StatusValidated, StatusCancelled, StatusExpired},
	StatusValidated: {},
	StatusCancelled: {},
	StatusExpired:   {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusValidated, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// ValidateTransition reports ErrInvalidTransition unless current -> target is in ValidTransitions.
func ValidateTransition(current, target Status) error {
	allowed, ok := ValidTransitions[current]
	if !ok {
		return fmt.Errorf("%w: unknown current status %q", ErrInvalidStatus, current)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, current, target)
}
