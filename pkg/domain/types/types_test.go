package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

func TestGrade(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		for i := 0; i < types.GradeCount; i++ {
			gt.NoError(t, types.Grade(i).Validate())
		}
	})

	t.Run("out of range", func(t *testing.T) {
		gt.Value(t, types.Grade(-1).Validate()).NotNil()
		gt.Value(t, types.Grade(5).Validate()).NotNil()
	})

	t.Run("label", func(t *testing.T) {
		gt.Value(t, types.Grade(0).String()).Equal("Grade 0")
		gt.Value(t, types.Grade(4).String()).Equal("Grade 4")
	})

	t.Run("interpretation", func(t *testing.T) {
		gt.Value(t, types.Grade(0).Interpretation()).Equal("No signs of osteoarthritis. Joint appears healthy.")
		gt.String(t, types.Grade(4).Interpretation()).NotEqual("")
		gt.Value(t, types.Grade(7).Interpretation()).Equal("")
	})
}

func TestIDs(t *testing.T) {
	gt.NoError(t, types.UserID(1).Validate())
	gt.Value(t, types.UserID(0).Validate()).NotNil()
	gt.Value(t, types.UserID(-3).Validate()).NotNil()
	gt.Value(t, types.UserID(42).String()).Equal("42")

	gt.NoError(t, types.PredictionID(1).Validate())
	gt.Value(t, types.PredictionID(0).Validate()).NotNil()
	gt.Value(t, types.PredictionID(7).String()).Equal("7")
}
