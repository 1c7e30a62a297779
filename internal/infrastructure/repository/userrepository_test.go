package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/domain/user"
	vo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
)

func createTestUser(t *testing.T, emailAddr string) *user.User {
	t.Helper()

	email, err := vo.NewEmail(emailAddr)
	require.NoError(t, err)
	account, err := user.NewUser("Alice", email, "$2a$12$hash")
	require.NoError(t, err)
	return account
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	account := createTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, account))
	assert.NotZero(t, account.ID())

	found, err := repo.GetBySID(ctx, account.SID())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, account.SID(), found.SID())
	assert.Equal(t, "Alice", found.Name())
	assert.Equal(t, "alice@example.com", found.Email().String())
	assert.Equal(t, "$2a$12$hash", found.PasswordHash())
}

func TestUserRepository_GetBySID_Missing(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())

	found, err := repo.GetBySID(context.Background(), "user_missing1234")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	account := createTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.GetByEmail(ctx, "  ALICE@example.com ")
	require.NoError(t, err, "lookup normalizes case and whitespace")
	require.NotNil(t, found)
	assert.Equal(t, account.SID(), found.SID())

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice@example.com")))
	assert.Error(t, repo.Create(ctx, createTestUser(t, "alice@example.com")))
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice@example.com")))

	exists, err := repo.ExistsByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice@example.com")))
	require.NoError(t, repo.Create(ctx, createTestUser(t, "bob@example.com")))

	found, total, err := repo.List(ctx, user.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, int64(2), total)
}

func TestUserRepository_List_Paginates(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice@example.com")))
	require.NoError(t, repo.Create(ctx, createTestUser(t, "bob@example.com")))
	require.NoError(t, repo.Create(ctx, createTestUser(t, "carol@example.com")))

	page, total, err := repo.List(ctx, user.ListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, int64(3), total)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	account := createTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, account))

	name := "Alice Cooper"
	require.NoError(t, account.ApplyUpdate(user.UpdateParams{Name: &name}))
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.GetBySID(ctx, account.SID())
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", found.Name())
}

func TestUserRepository_Update_Missing(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	account := createTestUser(t, "alice@example.com")
	require.NoError(t, account.SetID(99))

	err := repo.Update(ctx, account)
	assert.Error(t, err)
}

func TestUserRepository_DeleteBySID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	account := createTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, account))

	require.NoError(t, repo.DeleteBySID(ctx, account.SID()))

	found, err := repo.GetBySID(ctx, account.SID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.DeleteBySID(ctx, account.SID()))
}
