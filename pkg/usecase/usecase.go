package usecase

import (
	"time"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
	"github.com/Sujal861/knee-xray-insight-system/pkg/service/classifier"
)

// Default artificial latencies, matching the mock backend the dashboard
// originally shipped with. The delays are pure scheduling flavor; there is
// no real I/O behind any operation.
const (
	DefaultAuthDelay    = 500 * time.Millisecond
	DefaultPredictDelay = 1500 * time.Millisecond
)

// UseCases bundles the backend operations. All shared state lives in the
// repository and the session holder, both passed in explicitly.
type UseCases struct {
	repo    interfaces.Repository
	engine  *classifier.Engine
	session *auth.Holder

	authDelay    time.Duration
	predictDelay time.Duration
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithEngine replaces the classification engine
func WithEngine(engine *classifier.Engine) Option {
	return func(uc *UseCases) {
		uc.engine = engine
	}
}

// WithLatency overrides the artificial operation delays. Tests pass zero.
func WithLatency(auth, predict time.Duration) Option {
	return func(uc *UseCases) {
		uc.authDelay = auth
		uc.predictDelay = predict
	}
}

// New creates the use case layer on the given repository
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:         repo,
		engine:       classifier.New(),
		session:      auth.NewHolder(),
		authDelay:    DefaultAuthDelay,
		predictDelay: DefaultPredictDelay,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Session returns the process-wide session holder
func (uc *UseCases) Session() *auth.Holder {
	return uc.session
}
