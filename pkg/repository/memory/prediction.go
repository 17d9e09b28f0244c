package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

type predictionRepository struct {
	mu          sync.RWMutex
	predictions []*model.Prediction
	nextID      types.PredictionID
}

func newPredictionRepository() *predictionRepository {
	return &predictionRepository{
		nextID: 1,
	}
}

func copyPrediction(p *model.Prediction) *model.Prediction {
	copied := *p
	return &copied
}

// Append adds a record to the ledger with the next sequential ID and the
// current timestamp. The ledger is unbounded and append-only; records are
// never mutated or deleted.
func (r *predictionRepository) Append(ctx context.Context, prediction *model.Prediction) (*model.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyPrediction(prediction)
	created.ID = r.nextID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	r.nextID++

	r.predictions = append(r.predictions, created)
	return copyPrediction(created), nil
}

// ListByUser returns the user's records in insertion order
func (r *predictionRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Prediction{}
	for _, p := range r.predictions {
		if p.UserID == userID {
			result = append(result, copyPrediction(p))
		}
	}
	return result, nil
}

// ListAll returns every record in insertion order
func (r *predictionRepository) ListAll(ctx context.Context) ([]*model.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Prediction, len(r.predictions))
	for i, p := range r.predictions {
		result[i] = copyPrediction(p)
	}
	return result, nil
}
