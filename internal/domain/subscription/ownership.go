package subscription

import "strings"

// NormalizeIdentity normalizes an identity value to a comparable form.
// Owner references stored in records and caller identities extracted from
// tokens may carry incidental whitespace from transport layers.
func NormalizeIdentity(identity string) string {
	return strings.TrimSpace(identity)
}

// AuthorizeOwner permits the caller when it is the owner of the resource.
// Returns ErrNotOwner otherwise. Evaluated before every mutating operation
// on a subscription; has no side effects.
func AuthorizeOwner(ownerID, callerID string) error {
	owner := NormalizeIdentity(ownerID)
	caller := NormalizeIdentity(callerID)
	if caller == "" || owner == "" || owner != caller {
		return ErrNotOwner
	}
	return nil
}

// AuthorizeSelf permits the caller when it is the account being accessed.
// Returns ErrNotSelf otherwise. Used for account-scoped reads such as
// listing a user's subscriptions; there is no delegated or admin access
// through this path.
func AuthorizeSelf(accountID, callerID string) error {
	account := NormalizeIdentity(accountID)
	caller := NormalizeIdentity(callerID)
	if caller == "" || account == "" || account != caller {
		return ErrNotSelf
	}
	return nil
}
