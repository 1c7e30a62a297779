package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
)

func TestNewUser(t *testing.T) {
	email, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)

	u, err := NewUser("Alice", email, "$2a$12$hash")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(u.SID(), "user_"))
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, "alice@example.com", u.Email().String())
	assert.Equal(t, "$2a$12$hash", u.PasswordHash())
}

func TestNewUser_Validation(t *testing.T) {
	email, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)

	tests := []struct {
		name         string
		userName     string
		email        *vo.Email
		passwordHash string
	}{
		{"name too short", "A", email, "hash"},
		{"name too long", strings.Repeat("x", 51), email, "hash"},
		{"nil email", "Alice", nil, "hash"},
		{"empty password hash", "Alice", email, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.passwordHash)
			assert.Error(t, err)
		})
	}
}

func TestSetID(t *testing.T) {
	email, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)

	u, err := NewUser("Alice", email, "hash")
	require.NoError(t, err)

	require.NoError(t, u.SetID(7))
	assert.Equal(t, uint(7), u.ID())

	assert.Error(t, u.SetID(8), "ID must not be reassignable")
	assert.Error(t, u.SetID(0))
}
