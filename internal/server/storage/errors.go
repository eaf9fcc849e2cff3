package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUnavailable indicates a backend I/O failure; handlers surface it
	// as a retryable server error without exposing storage details
	ErrUnavailable = errors.New("storage unavailable")
)
