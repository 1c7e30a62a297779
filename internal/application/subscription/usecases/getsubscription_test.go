package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
)

func newOwnedSubscription(t *testing.T, ownerSID string) *subscription.Subscription {
	t.Helper()

	sub, err := subscription.NewSubscription(subscription.NewSubscriptionParams{
		UserSID:       ownerSID,
		Name:          "Netflix",
		Price:         15.99,
		Currency:      "USD",
		Frequency:     vo.FrequencyMonthly,
		PaymentMethod: "credit card",
		StartDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return sub
}

func TestGetSubscription(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	uc := NewGetSubscriptionUseCase(newFakeSubscriptionRepo(sub), testLogger())

	result, err := uc.Execute(context.Background(), GetSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: sub.SID(),
	})
	require.NoError(t, err)
	assert.Equal(t, sub.SID(), result.ID)
	assert.Equal(t, "user_owner123456", result.Owner)
}

func TestGetSubscription_NotFound(t *testing.T) {
	uc := NewGetSubscriptionUseCase(newFakeSubscriptionRepo(), testLogger())

	_, err := uc.Execute(context.Background(), GetSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: "sub_missing12345",
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetSubscription_NotOwner(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	uc := NewGetSubscriptionUseCase(newFakeSubscriptionRepo(sub), testLogger())

	_, err := uc.Execute(context.Background(), GetSubscriptionCommand{
		CallerSID:       "user_intruder999",
		SubscriptionSID: sub.SID(),
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetSubscription_MissingRecordBeatsOwnership(t *testing.T) {
	// A stranger asking for a record that does not exist gets not found,
	// not forbidden.
	uc := NewGetSubscriptionUseCase(newFakeSubscriptionRepo(), testLogger())

	_, err := uc.Execute(context.Background(), GetSubscriptionCommand{
		CallerSID:       "user_intruder999",
		SubscriptionSID: "sub_missing12345",
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetSubscription_RepoFailure(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.failWith = fmt.Errorf("connection refused")
	uc := NewGetSubscriptionUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), GetSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: "sub_any123456789",
	})
	assert.True(t, errors.IsUpstreamError(err))
}
