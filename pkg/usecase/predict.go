package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/service/classifier"
)

// PredictOutput carries the classification result and whether it was added
// to the ledger. An anonymous classification is returned with Recorded set
// to false instead of being dropped on the floor.
type PredictOutput struct {
	Result   *model.ClassifyResult
	Recorded bool
	Record   *model.Prediction
}

// Predict runs the grading engine on the uploaded file descriptor and, when
// a session is active, appends the result to the caller's history.
func (uc *UseCases) Predict(ctx context.Context, in classifier.FileInput) (*PredictOutput, error) {
	if err := wait(ctx, uc.predictDelay); err != nil {
		return nil, err
	}

	result := uc.engine.Predict(in)
	out := &PredictOutput{Result: result}

	session := uc.resolveSession(ctx)
	if session == nil {
		return out, nil
	}

	record, err := uc.repo.Predictions().Append(ctx, &model.Prediction{
		UserID:         session.UserID,
		Grade:          result.Grade,
		Confidence:     result.Confidence,
		Probabilities:  result.Probabilities,
		Interpretation: result.Interpretation,
		CreatedAt:      result.Timestamp,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record prediction", goerr.V("user_id", session.UserID))
	}

	out.Recorded = true
	out.Record = record
	return out, nil
}

// History returns the current user's ledger records in the order performed
func (uc *UseCases) History(ctx context.Context) ([]*model.HistoryEntry, error) {
	if err := wait(ctx, uc.authDelay); err != nil {
		return nil, err
	}

	session := uc.resolveSession(ctx)
	if session == nil {
		return nil, goerr.Wrap(ErrNotLoggedIn, "history requires a session")
	}

	records, err := uc.repo.Predictions().ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list predictions", goerr.V("user_id", session.UserID))
	}

	entries := make([]*model.HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = &model.HistoryEntry{
			ID:         record.ID,
			Grade:      record.Grade.String(),
			Confidence: record.Confidence,
			Date:       record.CreatedAt,
			Results:    record.Result(),
		}
	}
	return entries, nil
}
