// Package api defines the shared request and response types of the HTTP API.
package api

import (
	authentity "rapideat_backend/internal/feature/auth/domain/entity"
	restaurantentity "rapideat_backend/internal/feature/restaurants/domain/entity"
)

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// FormStatus is the outcome of an auth form submission.
type FormStatus string

const (
	// StatusIdle is the initial form state, before any submission.
	StatusIdle FormStatus = "idle"
	// StatusSuccess means the submission was accepted.
	StatusSuccess FormStatus = "success"
	// StatusError means the submission was rejected; FieldErrors carries the details.
	StatusError FormStatus = "error"
)

// AuthFormState is the result of a register or login submission, shaped for
// direct consumption by the frontend form. FieldErrors maps input names to a
// message shown next to that field.
type AuthFormState struct {
	Status      FormStatus        `json:"status"`
	Message     string            `json:"message,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// CurrentUserResponse wraps the sanitized view of the authenticated user.
type CurrentUserResponse struct {
	User *authentity.SafeUser `json:"user"`
}

// RestaurantListResponse is the catalog query result. Source reports whether
// the database or the built-in static catalog answered.
type RestaurantListResponse struct {
	Data   []restaurantentity.Restaurant `json:"data"`
	Source string                        `json:"source"`
}
