package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Grade represents an ordinal Kellgren-Lawrence severity class, 0 (none)
// through 4 (severe).
type Grade int

// GradeCount is the number of severity classes
const GradeCount = 5

// Validate checks if the Grade is within the Kellgren-Lawrence range
func (g Grade) Validate() error {
	if g < 0 || g >= GradeCount {
		return goerr.New("grade must be between 0 and 4", goerr.V("grade", int(g)))
	}
	return nil
}

// String returns the display label of the grade, e.g. "Grade 2"
func (g Grade) String() string {
	return fmt.Sprintf("Grade %d", int(g))
}

// Index returns the grade as a plain integer
func (g Grade) Index() int {
	return int(g)
}

var gradeInterpretations = [GradeCount]string{
	"No signs of osteoarthritis. Joint appears healthy.",
	"Doubtful narrowing of joint space. Possible osteophytes.",
	"Definite osteophytes. Possible narrowing of joint space.",
	"Moderate multiple osteophytes. Definite narrowing of joint space. Some sclerosis. Possible deformity.",
	"Large osteophytes. Marked narrowing of joint space. Severe sclerosis. Definite deformity.",
}

// Interpretation returns the radiographic reading text for the grade.
// Returns an empty string for an out-of-range grade.
func (g Grade) Interpretation() string {
	if g.Validate() != nil {
		return ""
	}
	return gradeInterpretations[g]
}

// DefaultInterpretations returns the built-in interpretation texts indexed by grade
func DefaultInterpretations() [GradeCount]string {
	return gradeInterpretations
}
