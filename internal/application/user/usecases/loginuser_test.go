package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/domain/user"
	vo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
)

func newTestAccount(t *testing.T, emailAddr, password string) *user.User {
	t.Helper()

	email, err := vo.NewEmail(emailAddr)
	require.NoError(t, err)
	hash, err := (&fakeHasher{}).Hash(password)
	require.NoError(t, err)
	account, err := user.NewUser("Alice", email, hash)
	require.NoError(t, err)
	return account
}

func TestLoginUser(t *testing.T) {
	account := newTestAccount(t, "alice@example.com", "secret123")
	uc := NewLoginUserUseCase(newFakeUserRepo(account), &fakeHasher{}, &fakeTokenIssuer{}, testLogger())

	result, err := uc.Execute(context.Background(), LoginUserCommand{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, account.SID(), result.User.ID)
	assert.Equal(t, "token-for-"+account.SID(), result.Token)
}

func TestLoginUser_BadCredentialsAreIndistinguishable(t *testing.T) {
	account := newTestAccount(t, "alice@example.com", "secret123")
	uc := NewLoginUserUseCase(newFakeUserRepo(account), &fakeHasher{}, &fakeTokenIssuer{}, testLogger())

	_, unknownEmailErr := uc.Execute(context.Background(), LoginUserCommand{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, wrongPasswordErr := uc.Execute(context.Background(), LoginUserCommand{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.True(t, errors.IsUnauthorizedError(unknownEmailErr))
	require.True(t, errors.IsUnauthorizedError(wrongPasswordErr))
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestGetUser(t *testing.T) {
	account := newTestAccount(t, "alice@example.com", "secret123")
	uc := NewGetUserUseCase(newFakeUserRepo(account), testLogger())

	result, err := uc.Execute(context.Background(), GetUserCommand{UserSID: account.SID()})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	uc := NewGetUserUseCase(newFakeUserRepo(), testLogger())

	_, err := uc.Execute(context.Background(), GetUserCommand{UserSID: "user_missing1234"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListUsers(t *testing.T) {
	a := newTestAccount(t, "alice@example.com", "secret123")
	b := newTestAccount(t, "bob@example.com", "secret123")
	uc := NewListUsersUseCase(newFakeUserRepo(a, b), testLogger())

	results, total, err := uc.Execute(context.Background(), ListUsersCommand{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, int64(2), total)
}
