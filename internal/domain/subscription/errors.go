package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNotOwner             = errors.New("caller is not the owner of this subscription")
	ErrNotSelf              = errors.New("caller is not the owner of this account")
	ErrInvalidRenewalDate   = errors.New("renewal date must be after the start date")
)
