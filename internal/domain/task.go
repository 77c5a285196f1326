package domain

import "time"

// Task is a todo item owned by exactly one user. OwnerID is set at creation
// and never changes; every read and mutation is filtered on it.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
