package valueobjects

import (
	"fmt"
	"time"
)

// Frequency represents a subscription billing frequency.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

var validFrequencies = map[Frequency]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
	FrequencyYearly:  true,
}

// renewalPeriods maps each frequency to its renewal period in days.
var renewalPeriods = map[Frequency]int{
	FrequencyDaily:   1,
	FrequencyWeekly:  7,
	FrequencyMonthly: 30,
	FrequencyYearly:  365,
}

// NewFrequency validates and returns a Frequency.
func NewFrequency(value string) (Frequency, error) {
	f := Frequency(value)
	if !validFrequencies[f] {
		return "", fmt.Errorf("invalid subscription frequency: %s", value)
	}
	return f, nil
}

func (f Frequency) String() string {
	return string(f)
}

// PeriodDays returns the renewal period in days for this frequency.
func (f Frequency) PeriodDays() int {
	return renewalPeriods[f]
}

// NextRenewal computes the renewal date one period after the given start.
func (f Frequency) NextRenewal(from time.Time) time.Time {
	return from.AddDate(0, 0, f.PeriodDays())
}
