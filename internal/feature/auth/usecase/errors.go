// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSessionNotFound is returned when a session cannot be found by its lookup hash.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreUnavailable is returned when the backing store cannot be reached.
	// The underlying cause is logged server-side and never surfaced to the user.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports one message per offending input field.
// All fields are checked before it is returned, so several field errors can be
// surfaced together; the first violation per field wins.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed"
}

// InvalidCredentialsError is returned when login credentials do not match.
// Field names the input the failure is surfaced on: "email" when no account
// exists for the address, "password" when the password does not match.
type InvalidCredentialsError struct {
	Field string
}

// Error implements the error interface.
func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials"
}
