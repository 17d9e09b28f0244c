package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// UserID represents a unique identifier for a user account
type UserID int64

// Validate checks if the UserID is valid
func (id UserID) Validate() error {
	if id <= 0 {
		return goerr.New("user ID must be positive", goerr.V("id", int64(id)))
	}
	return nil
}

// String returns the string representation of UserID
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// PredictionID represents a unique identifier for a prediction record
type PredictionID int64

// Validate checks if the PredictionID is valid
func (id PredictionID) Validate() error {
	if id <= 0 {
		return goerr.New("prediction ID must be positive", goerr.V("id", int64(id)))
	}
	return nil
}

// String returns the string representation of PredictionID
func (id PredictionID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
