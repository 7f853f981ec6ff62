package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when trying to create a user with an existing email
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrDuplicatePhone is returned when trying to create a user with an existing phone
	ErrDuplicatePhone = errors.New("user with this phone already exists")

	// ErrDuplicateToken is returned when trying to create a token with an existing hash
	ErrDuplicateToken = errors.New("token with this hash already exists")

	// ErrTokenConsumed is returned when a verification token is expired or already used
	ErrTokenConsumed = errors.New("verification token is expired or already used")
)
