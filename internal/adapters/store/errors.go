package store

import "errors"

var (
	// ErrUserNotFound means no user row matched the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrOpenStore wraps failures while opening or migrating the database.
	ErrOpenStore = errors.New("open store")
)
