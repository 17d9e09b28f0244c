package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/frontend"
	"github.com/Sujal861/knee-xray-insight-system/pkg/usecase"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/logging"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/safe"
)

// UploadPolicy bounds what the predict endpoint accepts
type UploadPolicy struct {
	MaxSizeBytes int64
	AllowedExts  []string
}

// DefaultUploadPolicy mirrors the dashboard's upload widget defaults
func DefaultUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSizeBytes: 10 << 20,
		AllowedExts:  []string{".png", ".jpg", ".jpeg"},
	}
}

// Allows reports whether the file name carries an accepted extension
func (p UploadPolicy) Allows(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range p.AllowedExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	upload UploadPolicy
}

type Options func(*Server)

// WithUploadPolicy overrides the upload limits
func WithUploadPolicy(policy UploadPolicy) Options {
	return func(s *Server) {
		s.upload = policy
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		upload: DefaultUploadPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(sessionMiddleware(uc))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.Get("/me", s.handleMe)
		})

		r.Post("/predict", s.handlePredict)
		r.Get("/history", s.handleHistory)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", s.handleAdminUsers)
			r.Get("/predictions", s.handleAdminPredictions)
		})
	})

	// Static file serving for SPA (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind dist dir for static")
	}

	r.Get("/*", spaHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// spaHandler handles SPA routing by serving static files and falling back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		if urlPath == "" {
			urlPath = "index.html"
		}

		if file, err := staticFS.Open(urlPath); err != nil {
			// File not found, serve index.html for SPA routing
			if indexFile, err := staticFS.Open("index.html"); err == nil {
				defer safe.Close(r.Context(), indexFile)
				w.Header().Set("Content-Type", "text/html")
				safe.Copy(r.Context(), w, indexFile)
				return
			}

			http.NotFound(w, r)
			return
		} else {
			safe.Close(r.Context(), file)
		}

		fileServer.ServeHTTP(w, r)
	}
}
