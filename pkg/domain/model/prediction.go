package model

import (
	"time"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// ClassifyResult is the outcome of one classification run.
// Probabilities is indexed by grade and always sums to 1.
type ClassifyResult struct {
	Grade          types.Grade               `json:"grade_index"`
	Confidence     float64                   `json:"confidence"`
	Probabilities  [types.GradeCount]float64 `json:"probabilities"`
	Interpretation string                    `json:"interpretation"`
	Timestamp      time.Time                 `json:"timestamp"`
}

// ProbabilityMap returns the probability vector keyed by grade label
// ("Grade 0" .. "Grade 4") for client consumption.
func (r *ClassifyResult) ProbabilityMap() map[string]float64 {
	m := make(map[string]float64, types.GradeCount)
	for i, p := range r.Probabilities {
		m[types.Grade(i).String()] = p
	}
	return m
}

// Prediction is one entry of the append-only prediction ledger. Records are
// never mutated or deleted once appended.
type Prediction struct {
	ID             types.PredictionID        `json:"id"`
	UserID         types.UserID              `json:"user_id"`
	Grade          types.Grade               `json:"grade_index"`
	Confidence     float64                   `json:"confidence"`
	Probabilities  [types.GradeCount]float64 `json:"probabilities"`
	Interpretation string                    `json:"interpretation"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// Result re-assembles the ClassifyResult this record was created from
func (p *Prediction) Result() *ClassifyResult {
	return &ClassifyResult{
		Grade:          p.Grade,
		Confidence:     p.Confidence,
		Probabilities:  p.Probabilities,
		Interpretation: p.Interpretation,
		Timestamp:      p.CreatedAt,
	}
}

// HistoryEntry is a ledger record prepared for the history view, with the
// full result duplicated in a nested sub-structure.
type HistoryEntry struct {
	ID         types.PredictionID `json:"id"`
	Grade      string             `json:"grade"`
	Confidence float64            `json:"confidence"`
	Date       time.Time          `json:"date"`
	Results    *ClassifyResult    `json:"results"`
}

// AdminPrediction is a ledger record joined with its owner's username for
// admin-wide listing.
type AdminPrediction struct {
	Prediction
	Username string `json:"username"`
}
