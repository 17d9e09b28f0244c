package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
)

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[auth.Token]*auth.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[auth.Token]*auth.Session),
	}
}

func (m *Memory) PutSession(ctx context.Context, session *auth.Session) error {
	if err := session.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}

	m.sessions.mu.Lock()
	defer m.sessions.mu.Unlock()

	m.sessions.sessions[session.Token] = session
	return nil
}

func (m *Memory) GetSession(ctx context.Context, token auth.Token) (*auth.Session, error) {
	if err := token.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid session token")
	}

	m.sessions.mu.RLock()
	defer m.sessions.mu.RUnlock()

	session, ok := m.sessions.sessions[token]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrSessionNotFound, "unknown session token")
	}

	return session, nil
}

func (m *Memory) DeleteSession(ctx context.Context, token auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session token")
	}

	m.sessions.mu.Lock()
	defer m.sessions.mu.Unlock()

	if _, ok := m.sessions.sessions[token]; !ok {
		return goerr.Wrap(interfaces.ErrSessionNotFound, "unknown session token")
	}

	delete(m.sessions.sessions, token)
	return nil
}
