package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// requireAdmin rejects callers without an active admin session
func (uc *UseCases) requireAdmin(ctx context.Context) error {
	session := uc.resolveSession(ctx)
	if session == nil || !session.IsAdmin {
		return goerr.Wrap(ErrUnauthorized, "admin session required")
	}
	return nil
}

// ListUsers returns every registered account. Admin only.
func (uc *UseCases) ListUsers(ctx context.Context) ([]*model.User, error) {
	if err := wait(ctx, uc.authDelay); err != nil {
		return nil, err
	}

	if err := uc.requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := uc.repo.Users().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

// ListPredictions returns the whole ledger joined with owning usernames.
// Admin only.
func (uc *UseCases) ListPredictions(ctx context.Context) ([]*model.AdminPrediction, error) {
	if err := wait(ctx, uc.authDelay); err != nil {
		return nil, err
	}

	if err := uc.requireAdmin(ctx); err != nil {
		return nil, err
	}

	records, err := uc.repo.Predictions().ListAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list predictions")
	}

	users, err := uc.repo.Users().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	usernames := make(map[types.UserID]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	result := make([]*model.AdminPrediction, len(records))
	for i, record := range records {
		username, ok := usernames[record.UserID]
		if !ok {
			username = "unknown"
		}
		result[i] = &model.AdminPrediction{
			Prediction: *record,
			Username:   username,
		}
	}
	return result, nil
}
