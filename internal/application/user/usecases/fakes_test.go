package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/subwatch-inc/subwatch/internal/domain/user"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeUserRepo is an in-memory user.Repository keyed by SID.
type fakeUserRepo struct {
	users    map[string]*user.User
	failWith error
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*user.User)}
	for _, u := range users {
		repo.users[u.SID()] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.users[u.SID()] = u
	return nil
}

func (r *fakeUserRepo) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.users[sid], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email().String() == normalized {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
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
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[u.SID()]; !ok {
		return fmt.Errorf("user not found: %s", u.SID())
	}
	r.users[u.SID()] = u
	return nil
}

func (r *fakeUserRepo) DeleteBySID(ctx context.Context, sid string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[sid]; !ok {
		return fmt.Errorf("user not found: %s", sid)
	}
	delete(r.users, sid)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

// fakeHasher hashes by prefixing; verification strips the prefix back off.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// fakeTxManager runs the function directly without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeTokenIssuer mints a deterministic token per user.
type fakeTokenIssuer struct {
	issueErr error
}

func (i *fakeTokenIssuer) Issue(userSID string) (string, error) {
	if i.issueErr != nil {
		return "", i.issueErr
	}
	return "token-for-" + userSID, nil
}
