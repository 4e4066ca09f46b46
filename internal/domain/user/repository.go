package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
}

// PasswordHasher hashes and verifies passwords. Compare returns a non-nil
// error on mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
