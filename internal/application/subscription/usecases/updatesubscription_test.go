package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/shared/errors"
)

func strptr(s string) *string { return &s }

func TestUpdateSubscription(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	repo := newFakeSubscriptionRepo(sub)
	uc := NewUpdateSubscriptionUseCase(repo, testLogger())

	price := 19.99
	result, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: sub.SID(),
		Name:            strptr("Netflix Premium"),
		Price:           &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Netflix Premium", result.Name)
	assert.Equal(t, 19.99, result.Price)
	assert.Equal(t, "USD", result.Currency, "fields absent from the payload keep their values")
}

func TestUpdateSubscription_NotFound(t *testing.T) {
	uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(), testLogger())

	_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: "sub_missing12345",
		Name:            strptr("Anything"),
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateSubscription_NotOwner(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), testLogger())

	_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		CallerSID:       "user_intruder999",
		SubscriptionSID: sub.SID(),
		Name:            strptr("Hijacked"),
	})
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, "Netflix", sub.Name())
}

func TestUpdateSubscription_InvalidFrequency(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), testLogger())

	_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: sub.SID(),
		Frequency:       strptr("biweekly"),
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSubscription_InvalidStatus(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), testLogger())

	_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: sub.SID(),
		Status:          strptr("paused"),
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSubscription_StatusChange(t *testing.T) {
	sub := newOwnedSubscription(t, "user_owner123456")
	uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), testLogger())

	result, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		CallerSID:       "user_owner123456",
		SubscriptionSID: sub.SID(),
		Status:          strptr("cancelled"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
}
