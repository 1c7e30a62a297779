package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeSubscriptionRepo is an in-memory subscription.Repository keyed by
// SID. Setting failWith makes every call return that error.
type fakeSubscriptionRepo struct {
	subs     map[string]*subscription.Subscription
	failWith error

	// captured arguments of the last FindUpcomingRenewals call
	lastRenewalsUserSID string
	lastRenewalsFrom    time.Time
	lastRenewalsTo      time.Time
}

func newFakeSubscriptionRepo(subs ...*subscription.Subscription) *fakeSubscriptionRepo {
	repo := &fakeSubscriptionRepo{subs: make(map[string]*subscription.Subscription)}
	for _, sub := range subs {
		repo.subs[sub.SID()] = sub
	}
	return repo
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.subs[sub.SID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.subs[sid], nil
}

func (r *fakeSubscriptionRepo) GetByUserSID(ctx context.Context, userSID string) ([]*subscription.Subscription, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.UserSID() == userSID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		out = append(out, sub)
	}
	total := int64(len(out))
	if filter.Page > 0 && filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start > len(out) {
			start = len(out)
		}
		end := start + filter.PageSize
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.subs[sub.SID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) DeleteBySID(ctx context.Context, sid string) error {
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.subs, sid)
	return nil
}

func (r *fakeSubscriptionRepo) FindUpcomingRenewals(ctx context.Context, userSID string, from, to time.Time) ([]*subscription.Subscription, error) {
	r.lastRenewalsUserSID = userSID
	r.lastRenewalsFrom = from
	r.lastRenewalsTo = to
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.UserSID() == userSID && sub.Status().IsActive() && sub.IsRenewalDue(from, to) {
			out = append(out, sub)
		}
	}
	return out, nil
}

// fakeWorkflow records trigger calls and hands back a fixed run ID.
type fakeWorkflow struct {
	runID    string
	failWith error
	calls    []string
}

func (w *fakeWorkflow) Trigger(ctx context.Context, subscriptionSID string) (string, error) {
	w.calls = append(w.calls, subscriptionSID)
	if w.failWith != nil {
		return "", w.failWith
	}
	return w.runID, nil
}
