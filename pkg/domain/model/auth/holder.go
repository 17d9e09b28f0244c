package auth

import (
	"sync"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// Holder keeps the single active session of the process. A new login
// overwrites the previous session; logout clears it. It is an explicit
// object rather than a package-level global so tests can run in isolation.
type Holder struct {
	mu      sync.RWMutex
	current *Session
}

// NewHolder returns an empty session holder (logged out)
func NewHolder() *Holder {
	return &Holder{}
}

// Set replaces the current session
func (h *Holder) Set(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = session
}

// Clear removes the current session. Clearing an empty holder is a no-op.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
}

// Current returns the active session, or nil when logged out
func (h *Holder) Current() *Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// CurrentUserID returns the active session's user ID, or 0 when logged out
func (h *Holder) CurrentUserID() types.UserID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return 0
	}
	return h.current.UserID
}

// IsAdmin reports whether the active session belongs to an admin
func (h *Holder) IsAdmin() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current != nil && h.current.IsAdmin
}
