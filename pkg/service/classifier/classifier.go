// Package classifier implements the deterministic synthetic grading engine.
// It derives a reproducible pseudo-random diagnosis from file metadata
// alone: no image content is ever analyzed. The same file always yields the
// same grade and probability vector.
package classifier

import (
	"time"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// Engine composes seed derivation, band classification and probability
// synthesis into a single classification pipeline.
type Engine struct {
	interpretations [types.GradeCount]string
	now             func() time.Time
}

// Option is a functional option for Engine
type Option func(*Engine)

// WithInterpretations overrides the per-grade interpretation texts
func WithInterpretations(texts [types.GradeCount]string) Option {
	return func(e *Engine) {
		e.interpretations = texts
	}
}

// WithClock overrides the timestamp source, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an Engine with the built-in Kellgren-Lawrence interpretations
func New(opts ...Option) *Engine {
	e := &Engine{
		interpretations: types.DefaultInterpretations(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Predict runs the full pipeline on the given file descriptor. It never
// fails: a missing byte sample only degrades the seed.
func (e *Engine) Predict(in FileInput) *model.ClassifyResult {
	seed := DeriveSeed(in)
	r := Normalize(seed)
	grade := classifyValue(r)
	probs := Synthesize(seed, r, grade)

	return &model.ClassifyResult{
		Grade:          grade,
		Confidence:     probs[grade],
		Probabilities:  probs,
		Interpretation: e.interpretations[grade],
		Timestamp:      e.now().UTC(),
	}
}
