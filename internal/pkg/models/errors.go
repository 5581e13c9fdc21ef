package models

import "errors"

// Domain error kinds. Repositories and usecases wrap these so handlers can
// map them to HTTP status codes without inspecting message text.
var (
	// ErrNotFound covers true absence and "found but not owned by the
	// caller"; the two are deliberately indistinguishable for devices.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a duplicate on a unique field (email, device name).
	ErrConflict = errors.New("already exists")

	// ErrPermission marks a role lattice violation.
	ErrPermission = errors.New("permission denied")

	// ErrUnauthorized marks bad credentials or an invalid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks malformed input or a closed-set violation.
	ErrValidation = errors.New("validation failed")
)
