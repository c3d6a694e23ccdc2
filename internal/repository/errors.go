// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver errors: ErrNotFound covers a missing user, place or
// booking, while ErrEmailExists signals a duplicate registration.
package repository

import "errors"

// ErrNotFound is returned when a document addressed by id or email does
// not exist.  Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when a user registration collides with the
// unique email index.  Handlers should translate this into an HTTP 422
// response carrying the validation detail.
var ErrEmailExists = errors.New("email already exists")
