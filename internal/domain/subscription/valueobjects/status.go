package valueobjects

import "fmt"

// Status represents the lifecycle status of a subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// ValidStatuses is the set of statuses the schema accepts. The lifecycle
// engine only ever transitions into cancelled; expired exists for schema
// parity and may only arrive through a generic update.
var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
}

// NewStatus validates and returns a Status.
func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !ValidStatuses[s] {
		return "", fmt.Errorf("invalid subscription status: %s", value)
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the subscription is eligible for renewal
// reminders and the upcoming-renewal query.
func (s Status) IsActive() bool {
	return s == StatusActive
}
