package auth

import "context"

type ctxSessionKey struct{}

// ContextWithSession embeds the session into the context
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey{}, session)
}

// SessionFromContext extracts the session from the context, or nil when the
// request is unauthenticated
func SessionFromContext(ctx context.Context) *Session {
	if session, ok := ctx.Value(ctxSessionKey{}).(*Session); ok {
		return session
	}
	return nil
}
