package user

import "context"

// Store is the storage collaborator for user records. Insert must enforce
// name uniqueness atomically and report a violation as ErrAlreadyExists, so
// concurrent signups with the same name cannot both commit.
type Store interface {
	// FindByName returns the record for the given name, or ErrNotFound.
	FindByName(ctx context.Context, name string) (*User, error)

	// Insert persists a new record. Returns ErrAlreadyExists when a record
	// with the same name is already present.
	Insert(ctx context.Context, u *User) error
}
