package usecases

import "context"

// WorkflowTrigger submits an asynchronous, time-delayed reminder workflow
// to an external scheduling collaborator. Trigger returns the opaque run
// identifier of the scheduled execution. Delivery is at most once: a
// failed call is surfaced, never retried.
type WorkflowTrigger interface {
	Trigger(ctx context.Context, subscriptionSID string) (string, error)
}
