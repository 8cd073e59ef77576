package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
)
