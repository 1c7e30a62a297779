package usecases

import "context"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenIssuer mints the bearer tokens handed out at sign-up and sign-in.
type TokenIssuer interface {
	Issue(userSID string) (string, error)
}

// TransactionRunner executes fn atomically. Satisfied by
// db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
