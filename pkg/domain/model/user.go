package model

import (
	"time"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// User represents a registered account. No password is ever stored: the
// backend is a credential-free mock and accepts any password at login.
type User struct {
	ID        types.UserID `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	IsAdmin   bool         `json:"is_admin"`
	CreatedAt time.Time    `json:"created_at"`
}
