package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/shared/errors"
)

func validCreateCommand() CreateSubscriptionCommand {
	return CreateSubscriptionCommand{
		CallerSID:     "user_caller01234",
		Name:          "Netflix",
		Price:         15.99,
		Currency:      "USD",
		Frequency:     "monthly",
		Category:      "entertainment",
		PaymentMethod: "credit card",
		StartDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	workflow := &fakeWorkflow{runID: "msg_12345"}
	uc := NewCreateSubscriptionUseCase(repo, workflow, testLogger())

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)

	assert.Equal(t, "msg_12345", result.RunID)
	assert.Equal(t, "user_caller01234", result.Subscription.Owner)
	assert.Equal(t, "active", result.Subscription.Status)
	require.Len(t, workflow.calls, 1)
	assert.Equal(t, result.Subscription.ID, workflow.calls[0])

	stored, err := repo.GetBySID(context.Background(), result.Subscription.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateSubscription_OwnerIsAlwaysTheCaller(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	workflow := &fakeWorkflow{runID: "msg_12345"}
	uc := NewCreateSubscriptionUseCase(repo, workflow, testLogger())

	cmd := validCreateCommand()
	cmd.CallerSID = "user_realowner99"

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "user_realowner99", result.Subscription.Owner)
}

func TestCreateSubscription_InvalidFrequency(t *testing.T) {
	uc := NewCreateSubscriptionUseCase(newFakeSubscriptionRepo(), &fakeWorkflow{}, testLogger())

	cmd := validCreateCommand()
	cmd.Frequency = "biweekly"

	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateSubscription_InvalidPayload(t *testing.T) {
	uc := NewCreateSubscriptionUseCase(newFakeSubscriptionRepo(), &fakeWorkflow{}, testLogger())

	cmd := validCreateCommand()
	cmd.Price = -5

	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateSubscription_RepoFailure(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.failWith = fmt.Errorf("connection refused")
	workflow := &fakeWorkflow{runID: "msg_12345"}
	uc := NewCreateSubscriptionUseCase(repo, workflow, testLogger())

	_, err := uc.Execute(context.Background(), validCreateCommand())
	assert.True(t, errors.IsUpstreamError(err))
	assert.Empty(t, workflow.calls, "the workflow must not be triggered when persistence fails")
}

func TestCreateSubscription_TriggerFailureFailsTheOperation(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	workflow := &fakeWorkflow{failWith: fmt.Errorf("scheduler unreachable")}
	uc := NewCreateSubscriptionUseCase(repo, workflow, testLogger())

	_, err := uc.Execute(context.Background(), validCreateCommand())
	assert.True(t, errors.IsUpstreamError(err))

	// The record stays persisted; create and trigger are not atomic.
	assert.Len(t, repo.subs, 1)
}
