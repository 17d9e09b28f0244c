package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
)

// Register creates a non-admin account. The password is accepted as a
// formality and never stored or checked anywhere in this backend.
func (uc *UseCases) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := wait(ctx, uc.authDelay); err != nil {
		return nil, err
	}

	if username == "" {
		return nil, goerr.New("username is required")
	}
	if email == "" {
		return nil, goerr.New("email is required")
	}

	user, err := uc.repo.Users().Create(ctx, &model.User{
		Username: username,
		Email:    email,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to register user", goerr.V("username", username))
	}

	return user, nil
}

// Login looks the username up and issues a session. No credential is ever
// verified; any password passes for a known username. The new session
// replaces whatever session was active before.
func (uc *UseCases) Login(ctx context.Context, username, password string) (*auth.Session, error) {
	if err := wait(ctx, uc.authDelay); err != nil {
		return nil, err
	}

	user, err := uc.repo.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, interfaces.ErrUserNotFound) {
			return nil, goerr.Wrap(ErrInvalidCredentials, "login rejected", goerr.V("username", username))
		}
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("username", username))
	}

	session := auth.NewSession(user.ID, user.Username, user.IsAdmin)
	if err := uc.repo.PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store session")
	}

	// Drop the previous session so at most one stays active
	if prev := uc.session.Current(); prev != nil && prev.Token != session.Token {
		if err := uc.repo.DeleteSession(ctx, prev.Token); err != nil && !errors.Is(err, interfaces.ErrSessionNotFound) {
			return nil, goerr.Wrap(err, "failed to discard previous session")
		}
	}
	uc.session.Set(session)

	return session, nil
}

// Logout clears the active session. Calling it when already logged out is a
// no-op, not an error.
func (uc *UseCases) Logout(ctx context.Context) error {
	if err := wait(ctx, uc.authDelay); err != nil {
		return err
	}

	session := uc.resolveSession(ctx)
	if session == nil {
		return nil
	}

	if err := uc.repo.DeleteSession(ctx, session.Token); err != nil && !errors.Is(err, interfaces.ErrSessionNotFound) {
		return goerr.Wrap(err, "failed to delete session")
	}

	if current := uc.session.Current(); current != nil && current.Token == session.Token {
		uc.session.Clear()
	}
	return nil
}

// ValidateToken resolves a bearer token to its session
func (uc *UseCases) ValidateToken(ctx context.Context, token auth.Token) (*auth.Session, error) {
	session, err := uc.repo.GetSession(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid session token")
	}
	return session, nil
}

// resolveSession prefers the request-scoped session and falls back to the
// process-wide one
func (uc *UseCases) resolveSession(ctx context.Context) *auth.Session {
	if session := auth.SessionFromContext(ctx); session != nil {
		return session
	}
	return uc.session.Current()
}
