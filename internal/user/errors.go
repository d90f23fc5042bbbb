package user

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists is returned when a record with the same name is
	// already persisted.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown name and wrong password so
	// login failures never reveal whether a name is registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
