package interfaces

import (
	"context"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// UserRepository manages registered accounts. Username and email uniqueness
// is enforced at creation; accounts are never deleted.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

// PredictionRepository is the append-only prediction ledger
type PredictionRepository interface {
	Append(ctx context.Context, prediction *model.Prediction) (*model.Prediction, error)
	ListByUser(ctx context.Context, userID types.UserID) ([]*model.Prediction, error)
	ListAll(ctx context.Context) ([]*model.Prediction, error)
}

// Repository aggregates all backend stores
type Repository interface {
	Users() UserRepository
	Predictions() PredictionRepository

	PutSession(ctx context.Context, session *auth.Session) error
	GetSession(ctx context.Context, token auth.Token) (*auth.Session, error)
	DeleteSession(ctx context.Context, token auth.Token) error

	Close() error
}
