package memory

import (
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory backend. Nothing survives process restart.
type Memory struct {
	users       *userRepository
	predictions *predictionRepository
	sessions    *sessionStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		users:       newUserRepository(),
		predictions: newPredictionRepository(),
		sessions:    newSessionStore(),
	}
}

func (m *Memory) Users() interfaces.UserRepository {
	return m.users
}

func (m *Memory) Predictions() interfaces.PredictionRepository {
	return m.predictions
}

func (m *Memory) Close() error {
	return nil
}
