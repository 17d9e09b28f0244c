package auth

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// Token is an opaque session token. It carries no signature or expiry: the
// backend performs no real authentication.
type Token string

// Validate checks if the Token is valid
func (t Token) Validate() error {
	if t == "" {
		return goerr.New("session token cannot be empty")
	}
	return nil
}

// String returns the string representation of Token
func (t Token) String() string {
	return string(t)
}

// Session is the authenticated context issued by a successful login
type Session struct {
	Token    Token        `json:"token" masq:"secret"`
	UserID   types.UserID `json:"user_id"`
	Username string       `json:"username"`
	IsAdmin  bool         `json:"is_admin"`
}

// NewSession issues a session for the given user with a fresh opaque token
func NewSession(userID types.UserID, username string, isAdmin bool) *Session {
	return &Session{
		Token:    Token("mock-jwt-token-" + uuid.NewString()),
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}
}

// Validate checks if the Session is valid
func (s *Session) Validate() error {
	if err := s.Token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}
	if err := s.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}
	if s.Username == "" {
		return goerr.New("session username cannot be empty")
	}
	return nil
}
