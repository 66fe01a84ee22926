package models

import "errors"

var (
	// ErrNotFound is returned when no record exists at the requested key.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique key is already taken.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidStatus is returned for a trip status other than paid or notpaid.
	ErrInvalidStatus = errors.New("invalid status")
)
