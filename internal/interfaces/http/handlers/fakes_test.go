package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	uservo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/constants"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// authAs seeds the authenticated caller the way the auth middleware does.
func authAs(callerSID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserSID, callerSID)
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// fakeSubscriptionRepo is an in-memory subscription.Repository keyed by SID.
type fakeSubscriptionRepo struct {
	subs map[string]*subscription.Subscription
}

func newFakeSubscriptionRepo(subs ...*subscription.Subscription) *fakeSubscriptionRepo {
	repo := &fakeSubscriptionRepo{subs: make(map[string]*subscription.Subscription)}
	for _, sub := range subs {
		repo.subs[sub.SID()] = sub
	}
	return repo
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	r.subs[sub.SID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	return r.subs[sid], nil
}

func (r *fakeSubscriptionRepo) GetByUserSID(ctx context.Context, userSID string) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.UserSID() == userSID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
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
	r.subs[sub.SID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) DeleteBySID(ctx context.Context, sid string) error {
	delete(r.subs, sid)
	return nil
}

func (r *fakeSubscriptionRepo) FindUpcomingRenewals(ctx context.Context, userSID string, from, to time.Time) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.UserSID() == userSID && sub.Status().IsActive() && sub.IsRenewalDue(from, to) {
			out = append(out, sub)
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory user.Repository keyed by SID.
type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*user.User)}
	for _, u := range users {
		repo.users[u.SID()] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.users[u.SID()] = u
	return nil
}

func (r *fakeUserRepo) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return r.users[sid], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email().String() == normalized {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	var out []*user.User
	for _, u := range r.users {
		out = append(out, u)
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

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if _, ok := r.users[u.SID()]; !ok {
		return fmt.Errorf("user not found: %s", u.SID())
	}
	r.users[u.SID()] = u
	return nil
}

func (r *fakeUserRepo) DeleteBySID(ctx context.Context, sid string) error {
	if _, ok := r.users[sid]; !ok {
		return fmt.Errorf("user not found: %s", sid)
	}
	delete(r.users, sid)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

// fakeWorkflow hands back a fixed run ID for every trigger.
type fakeWorkflow struct {
	runID string
	calls []string
}

func (w *fakeWorkflow) Trigger(ctx context.Context, subscriptionSID string) (string, error) {
	w.calls = append(w.calls, subscriptionSID)
	return w.runID, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(userSID string) (string, error) { return "token-for-" + userSID, nil }

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestSubscription(t *testing.T, ownerSID string) *subscription.Subscription {
	t.Helper()

	sub, err := subscription.NewSubscription(subscription.NewSubscriptionParams{
		UserSID:       ownerSID,
		Name:          "Netflix",
		Price:         15.99,
		Currency:      "USD",
		Frequency:     vo.FrequencyMonthly,
		PaymentMethod: "credit card",
		StartDate:     time.Now().UTC().AddDate(0, 0, -10),
	})
	require.NoError(t, err)
	return sub
}

func newTestAccount(t *testing.T, emailAddr, password string) *user.User {
	t.Helper()

	email, err := uservo.NewEmail(emailAddr)
	require.NoError(t, err)
	account, err := user.NewUser("Alice", email, "hashed:"+password)
	require.NoError(t, err)
	return account
}
