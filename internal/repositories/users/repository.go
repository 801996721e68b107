package users

import "context"

// Repository creates and verifies credentials.
type Repository interface {
	// CreateUser stores a new credential. It returns false, without error,
	// when the username is already taken (exact, case-sensitive match).
	CreateUser(ctx context.Context, username, password string) (bool, error)

	// Authenticate reports whether a stored credential matches both values.
	// Unknown usernames and wrong passwords are not distinguished.
	Authenticate(ctx context.Context, username, password string) (bool, error)
}
