package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// SeedDemoData installs the demo fixtures the dashboard ships with: an admin
// account, a regular account and one sample moderate-grade prediction owned
// by the regular user.
func (m *Memory) SeedDemoData(ctx context.Context) error {
	if _, err := m.Users().Create(ctx, &model.User{
		Username: "admin",
		Email:    "admin@example.com",
		IsAdmin:  true,
	}); err != nil {
		return goerr.Wrap(err, "failed to seed admin user")
	}

	user, err := m.Users().Create(ctx, &model.User{
		Username: "user1",
		Email:    "user1@example.com",
	})
	if err != nil {
		return goerr.Wrap(err, "failed to seed demo user")
	}

	sample := &model.Prediction{
		UserID:         user.ID,
		Grade:          types.Grade(2),
		Confidence:     0.85,
		Probabilities:  [types.GradeCount]float64{0.02, 0.05, 0.85, 0.05, 0.03},
		Interpretation: types.Grade(2).Interpretation(),
	}
	if _, err := m.Predictions().Append(ctx, sample); err != nil {
		return goerr.Wrap(err, "failed to seed demo prediction")
	}

	return nil
}
