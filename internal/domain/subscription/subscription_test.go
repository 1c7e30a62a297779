package subscription

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
)

func newTestSubscription(t *testing.T) *Subscription {
	t.Helper()

	sub, err := NewSubscription(NewSubscriptionParams{
		UserSID:       "user_abc123",
		Name:          "Netflix",
		Price:         15.99,
		Currency:      "USD",
		Frequency:     vo.FrequencyMonthly,
		Category:      "entertainment",
		PaymentMethod: "credit card",
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return sub
}

func TestNewSubscription(t *testing.T) {
	sub := newTestSubscription(t)

	assert.True(t, strings.HasPrefix(sub.SID(), "sub_"))
	assert.Equal(t, "user_abc123", sub.UserSID())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, 1, sub.Version())
}

func TestNewSubscription_DerivesRenewalDate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency vo.Frequency
		want      time.Time
	}{
		{vo.FrequencyDaily, start.AddDate(0, 0, 1)},
		{vo.FrequencyWeekly, start.AddDate(0, 0, 7)},
		{vo.FrequencyMonthly, start.AddDate(0, 0, 30)},
		{vo.FrequencyYearly, start.AddDate(0, 0, 365)},
	}

	for _, tt := range tests {
		t.Run(tt.frequency.String(), func(t *testing.T) {
			sub, err := NewSubscription(NewSubscriptionParams{
				UserSID:       "user_abc123",
				Name:          "Spotify",
				Price:         9.99,
				Currency:      "USD",
				Frequency:     tt.frequency,
				PaymentMethod: "credit card",
				StartDate:     start,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.RenewalDate())
		})
	}
}

func TestNewSubscription_ExplicitRenewalDate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	renewal := start.AddDate(0, 0, 14)

	sub, err := NewSubscription(NewSubscriptionParams{
		UserSID:       "user_abc123",
		Name:          "Gym",
		Price:         30,
		Currency:      "USD",
		Frequency:     vo.FrequencyMonthly,
		PaymentMethod: "debit card",
		StartDate:     start,
		RenewalDate:   &renewal,
	})
	require.NoError(t, err)
	assert.Equal(t, renewal, sub.RenewalDate())
}

func TestNewSubscription_Validation(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := start.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		params NewSubscriptionParams
	}{
		{
			"missing owner",
			NewSubscriptionParams{Name: "Netflix", Frequency: vo.FrequencyMonthly, StartDate: start},
		},
		{
			"name too short",
			NewSubscriptionParams{UserSID: "user_abc123", Name: "N", Frequency: vo.FrequencyMonthly, StartDate: start},
		},
		{
			"name too long",
			NewSubscriptionParams{UserSID: "user_abc123", Name: strings.Repeat("x", 101), Frequency: vo.FrequencyMonthly, StartDate: start},
		},
		{
			"negative price",
			NewSubscriptionParams{UserSID: "user_abc123", Name: "Netflix", Price: -1, Frequency: vo.FrequencyMonthly, StartDate: start},
		},
		{
			"renewal before start",
			NewSubscriptionParams{UserSID: "user_abc123", Name: "Netflix", Frequency: vo.FrequencyMonthly, StartDate: start, RenewalDate: &past},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSubscription(tt.params)
			assert.Error(t, err)
		})
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	sub := newTestSubscription(t)

	sub.Cancel()
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	versionAfterFirst := sub.Version()

	sub.Cancel()
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.Equal(t, versionAfterFirst, sub.Version(), "repeat cancel must not bump the version")
}

func TestApplyUpdate(t *testing.T) {
	sub := newTestSubscription(t)

	name := "Netflix Premium"
	price := 22.99
	status := vo.StatusCancelled

	err := sub.ApplyUpdate(UpdateParams{
		Name:   &name,
		Price:  &price,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Netflix Premium", sub.Name())
	assert.Equal(t, 22.99, sub.Price())
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.Equal(t, 2, sub.Version())

	// Untouched fields keep their values
	assert.Equal(t, "USD", sub.Currency())
	assert.Equal(t, "credit card", sub.PaymentMethod())
}

func TestApplyUpdate_RejectsRenewalBeforeStart(t *testing.T) {
	sub := newTestSubscription(t)
	bad := sub.StartDate().AddDate(0, 0, -1)

	err := sub.ApplyUpdate(UpdateParams{RenewalDate: &bad})
	assert.ErrorIs(t, err, ErrInvalidRenewalDate)
}

func TestApplyUpdate_RejectsInvalidName(t *testing.T) {
	sub := newTestSubscription(t)
	short := "x"

	err := sub.ApplyUpdate(UpdateParams{Name: &short})
	assert.Error(t, err)
	assert.Equal(t, "Netflix", sub.Name())
}

func TestIsRenewalDue(t *testing.T) {
	sub := newTestSubscription(t)
	renewal := sub.RenewalDate()

	assert.True(t, sub.IsRenewalDue(renewal, renewal), "window edges are inclusive")
	assert.True(t, sub.IsRenewalDue(renewal.AddDate(0, 0, -7), renewal))
	assert.True(t, sub.IsRenewalDue(renewal, renewal.AddDate(0, 0, 7)))
	assert.False(t, sub.IsRenewalDue(renewal.Add(time.Second), renewal.AddDate(0, 0, 7)))
	assert.False(t, sub.IsRenewalDue(renewal.AddDate(0, 0, -7), renewal.Add(-time.Second)))
}
