package http

import (
	"net/http"
	"strings"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
	"github.com/Sujal861/knee-xray-insight-system/pkg/usecase"
)

// sessionMiddleware resolves a bearer token into the request context. An
// absent or unknown token leaves the request anonymous; the handlers decide
// whether that is acceptable.
func sessionMiddleware(uc *usecase.UseCases) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			token := auth.Token(strings.TrimPrefix(header, "Bearer "))
			session, err := uc.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
