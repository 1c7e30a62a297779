package user

import (
	"fmt"
	"time"

	vo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/id"
)

// User represents the user aggregate root. The core only compares a user's
// SID against a subscription's owner reference; credential material stays
// inside this aggregate and is never serialized outward.
type User struct {
	internalID   uint
	sid          string
	name         string
	email        *vo.Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with a hashed password.
func NewUser(name string, email *vo.Email, passwordHash string) (*User, error) {
	if len(name) < 2 || len(name) > 50 {
		return nil, fmt.Errorf("user name must be between 2 and 50 characters")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(internalID uint, sid, name string, email *vo.Email, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if internalID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("user SID is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		internalID:   internalID,
		sid:          sid,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// UpdateParams carries the optional fields of a profile update. Nil
// fields are left unchanged.
type UpdateParams struct {
	Name  *string
	Email *vo.Email
}

// ApplyUpdate merges the given fields into the account.
func (u *User) ApplyUpdate(params UpdateParams) error {
	if params.Name != nil {
		if len(*params.Name) < 2 || len(*params.Name) > 50 {
			return fmt.Errorf("user name must be between 2 and 50 characters")
		}
		u.name = *params.Name
	}
	if params.Email != nil {
		u.email = params.Email
	}
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now().UTC()
	return nil
}

// ID returns the internal persistence ID
func (u *User) ID() uint {
	return u.internalID
}

// SID returns the public user identifier (user_xxx)
func (u *User) SID() string {
	return u.sid
}

// Name returns the user's display name
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email
func (u *User) Email() *vo.Email {
	return u.email
}

// PasswordHash returns the stored password hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the internal ID (only for persistence layer use)
func (u *User) SetID(internalID uint) error {
	if u.internalID != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if internalID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.internalID = internalID
	return nil
}
