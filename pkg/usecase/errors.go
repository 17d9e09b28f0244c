package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotLoggedIn        = errors.New("no active session")
)
