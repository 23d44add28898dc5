package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileInUse    = errors.New("profile is attached to users")

	// ErrNoMatch is returned by by-params lookups when nothing matched.
	ErrNoMatch = errors.New("no record matches the given filter")
)

// ValidationError carries a field → message map from a request schema.
// It blocks the operation before any service call and renders as inline
// errors next to each form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
