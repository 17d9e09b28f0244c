package classifier

import "github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"

// The canonical threshold band table over r in [0,1). Bands are contiguous,
// cover [0,1) exactly once, and grade 2 holds the widest band: the most
// common reading is a moderate one.
//
//	[0.00, 0.15) -> Grade 0
//	[0.15, 0.35) -> Grade 1
//	[0.35, 0.65) -> Grade 2
//	[0.65, 0.85) -> Grade 3
//	[0.85, 1.00) -> Grade 4
var bandUpperBounds = [types.GradeCount]float64{0.15, 0.35, 0.65, 0.85, 1.0}

// Normalize reduces a seed to a value in [0,1) via mod 100
func Normalize(seed int) float64 {
	m := seed % 100
	if m < 0 {
		m += 100
	}
	return float64(m) / 100
}

// Classify maps a seed to a grade through the fixed band table.
// Identical seeds always yield identical grades.
func Classify(seed int) types.Grade {
	return classifyValue(Normalize(seed))
}

func classifyValue(r float64) types.Grade {
	for grade, upper := range bandUpperBounds {
		if r < upper {
			return types.Grade(grade)
		}
	}
	return types.Grade(types.GradeCount - 1)
}
