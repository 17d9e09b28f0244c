package classifier

import (
	"math"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

const (
	probabilityFloor = 0.05
	baseExtra        = 0.6
	spreadFactor     = 0.15
	winnerWeight     = 0.4
	neighborWeight   = 0.15
)

// Synthesize builds the 5-element confidence vector for the winning grade.
// Every term is additive over a uniform floor and the jitter factor
// 1+sin(seed+i) is non-negative, so each entry stays positive; the final
// normalization makes the vector sum to 1. The whole construction is a pure
// function of seed, r and grade.
func Synthesize(seed int, r float64, grade types.Grade) [types.GradeCount]float64 {
	var probs [types.GradeCount]float64
	for i := range probs {
		probs[i] = probabilityFloor
	}

	// Extra mass on the winning slot grows with r
	probs[grade] += baseExtra + r*spreadFactor

	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	remaining := 1 - sum

	// Distance-weighted distribution of the remainder with periodic jitter,
	// so neighbor probabilities are uneven but still reproducible
	for i := range probs {
		weight := neighborWeight
		if types.Grade(i) == grade {
			weight = winnerWeight
		}
		probs[i] += remaining * weight * (1 + math.Sin(float64(seed+i)))
	}

	total := 0.0
	for _, p := range probs {
		total += p
	}
	for i := range probs {
		probs[i] /= total
	}

	return probs
}
