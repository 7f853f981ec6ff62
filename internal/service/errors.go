package service

import (
	"errors"
	"fmt"
)

// Service-level error taxonomy. Handlers map these to HTTP statuses at the
// boundary; nothing below the handler layer writes responses.
var (
	// ErrInvalidCredentials is returned for any login failure. The cause
	// (unknown email vs wrong password) is never distinguished.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for any access or refresh token failure.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidVerification is returned for any verification token failure:
	// unknown, expired, or already used.
	ErrInvalidVerification = errors.New("invalid or expired verification token")

	// ErrAccountInactive is returned when a pending or suspended account
	// attempts to authenticate.
	ErrAccountInactive = errors.New("account is not active")

	// ErrConflict is returned when a unique field (email, phone) is taken.
	ErrConflict = errors.New("resource already exists")

	// ErrNotFound is returned when a requested record does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrAlreadyPaid is returned when a payment intent is requested for a
	// completed booking.
	ErrAlreadyPaid = errors.New("booking is already paid")

	// ErrPaymentProvider is returned when the payment provider call fails.
	// Callers receive a generic failure; the underlying cause is only logged.
	ErrPaymentProvider = errors.New("payment provider error")
)

// ValidationError carries field-level messages for a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
