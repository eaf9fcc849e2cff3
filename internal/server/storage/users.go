package storage

import (
	"context"
	"time"

	"calcapi/internal/models"
)

// UserStorage defines interface for account persistence, keyed by username
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Username uniqueness must be enforced atomically by the backing
	// store (not by a check-then-insert in application code).
	// Returns ErrUserAlreadyExists if username is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateLastLogin updates the last login timestamp.
	// Idempotent per call; under concurrent logins the last write wins.
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
