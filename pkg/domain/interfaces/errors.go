package interfaces

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all repository implementations
var (
	ErrUserNotFound    = goerr.New("user not found")
	ErrUsernameExists  = goerr.New("username already exists")
	ErrEmailExists     = goerr.New("email already exists")
	ErrSessionNotFound = goerr.New("session not found")
)
