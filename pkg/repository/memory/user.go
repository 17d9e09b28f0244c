package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

type userRepository struct {
	mu     sync.RWMutex
	users  []*model.User
	nextID types.UserID
}

func newUserRepository() *userRepository {
	return &userRepository{
		nextID: 1,
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

// Create registers a new account with a fresh sequential ID. Uniqueness of
// username and email is checked under the same lock, so a failed create
// leaves the directory unchanged.
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, goerr.Wrap(interfaces.ErrUsernameExists, "cannot create user", goerr.V("username", user.Username))
		}
		if existing.Email == user.Email {
			return nil, goerr.Wrap(interfaces.ErrEmailExists, "cannot create user", goerr.V("email", user.Email))
		}
	}

	created := copyUser(user)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.users = append(r.users, created)
	return copyUser(created), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}

	return nil, goerr.Wrap(interfaces.ErrUserNotFound, "unknown username", goerr.V("username", username))
}

// List returns all accounts in insertion order
func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.User, len(r.users))
	for i, user := range r.users {
		result[i] = copyUser(user)
	}
	return result, nil
}
