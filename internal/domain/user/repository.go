package user

import "context"

// ListFilter pages the account listing. Zero Page or PageSize disables
// paging.
type ListFilter struct {
	Page     int
	PageSize int
}

// Repository defines the interface for user data operations. Lookups
// return (nil, nil) when no record exists.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetBySID(ctx context.Context, sid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List returns one page of accounts plus the total record count.
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Update(ctx context.Context, user *User) error
	DeleteBySID(ctx context.Context, sid string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
