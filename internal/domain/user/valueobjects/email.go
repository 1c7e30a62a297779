package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email represents a validated, normalized email address.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address.
func NewEmail(value string) (*Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(normalized) > 254 {
		return nil, fmt.Errorf("email is too long")
	}
	if !emailPattern.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}
	return &Email{value: normalized}, nil
}

func (e *Email) String() string {
	return e.value
}

// Equals compares two emails by normalized value.
func (e *Email) Equals(other *Email) bool {
	return other != nil && e.value == other.value
}
