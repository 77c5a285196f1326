package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or, for tasks,
	// is not owned by the requesting user. Callers cannot tell the two
	// apart, which keeps other users' task ids unobservable.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when creating a user with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")
)
