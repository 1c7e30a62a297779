package subscription

import (
	"context"
	"time"
)

// ListFilter narrows and pages the global subscription listing. Zero
// Page or PageSize disables paging.
type ListFilter struct {
	Page     int
	PageSize int
}

// Repository is the store adapter for subscription records. It is the
// single source of truth; lookups return (nil, nil) when no record exists
// and a non-nil error only for storage-layer failures.
type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	GetByUserSID(ctx context.Context, userSID string) ([]*Subscription, error)

	// List returns one page of subscriptions plus the total record count.
	List(ctx context.Context, filter ListFilter) ([]*Subscription, int64, error)
	Update(ctx context.Context, subscription *Subscription) error
	DeleteBySID(ctx context.Context, sid string) error

	// FindUpcomingRenewals returns the active subscriptions owned by the
	// given user whose renewal date falls within [from, to], both bounds
	// inclusive.
	FindUpcomingRenewals(ctx context.Context, userSID string, from, to time.Time) ([]*Subscription, error)
}
