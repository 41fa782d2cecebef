package models

import (
	"errors"
	"time"
)

// ErrUniqueViolation is returned by the storage layer when an insert
// collides with an existing row on a unique column.
var ErrUniqueViolation = errors.New("unique constraint violation")

// User represents a user record in the database
type User struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key, assigned by the datastore
	Username  string    `json:"username" db:"username"`     // Display name, not unique
	Email     string    `json:"email" db:"email"`           // Unique email
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Insertion timestamp
}
