package models

import "errors"

// Domain error taxonomy. Services return these (possibly wrapped with
// context) and handlers map each to a stable HTTP status. No error is
// retried internally; every failure propagates directly to the caller.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)
