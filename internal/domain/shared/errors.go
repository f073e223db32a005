package shared

import "errors"

// Domain-specific errors
var (
	// Item errors
	ErrItemNotFound = errors.New("item not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")

	// Validation errors
	ErrInvalidRequest = errors.New("invalid request")

	// Database errors
	ErrDatabaseConnection  = errors.New("database connection failed")
	ErrDatabaseQuery       = errors.New("database query failed")
	ErrDatabaseTransaction = errors.New("database transaction failed")
)
