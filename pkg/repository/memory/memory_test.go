package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
	"github.com/Sujal861/knee-xray-insight-system/pkg/repository/memory"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns sequential IDs", func(t *testing.T) {
		repo := memory.New()

		first, err := repo.Users().Create(ctx, &model.User{Username: "alice", Email: "alice@example.com"})
		gt.NoError(t, err).Required()
		gt.Value(t, first.ID).Equal(types.UserID(1))
		gt.Bool(t, first.CreatedAt.IsZero()).False()

		second, err := repo.Users().Create(ctx, &model.User{Username: "bob", Email: "bob@example.com"})
		gt.NoError(t, err).Required()
		gt.Value(t, second.ID).Equal(types.UserID(2))
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Users().Create(ctx, &model.User{Username: "alice", Email: "alice@example.com"})
		gt.NoError(t, err).Required()

		_, err = repo.Users().Create(ctx, &model.User{Username: "alice", Email: "other@example.com"})
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrUsernameExists)).True()
	})

	t.Run("duplicate email is rejected and directory unchanged", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Users().Create(ctx, &model.User{Username: "a", Email: "x@y.com"})
		gt.NoError(t, err).Required()

		_, err = repo.Users().Create(ctx, &model.User{Username: "b", Email: "x@y.com"})
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrEmailExists)).True()

		users, err := repo.Users().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, users).Length(1)

		// A third distinct registration still succeeds
		_, err = repo.Users().Create(ctx, &model.User{Username: "c", Email: "c@y.com"})
		gt.NoError(t, err).Required()

		users, err = repo.Users().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, users).Length(2)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Users().Create(ctx, &model.User{Username: "alice", Email: "alice@example.com"})
		gt.NoError(t, err).Required()

		found, err := repo.Users().GetByUsername(ctx, "alice")
		gt.NoError(t, err).Required()
		gt.Value(t, found.ID).Equal(created.ID)

		_, err = repo.Users().GetByUsername(ctx, "nobody")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrUserNotFound)).True()
	})

	t.Run("List returns insertion order", func(t *testing.T) {
		repo := memory.New()

		names := []string{"u1", "u2", "u3"}
		for _, name := range names {
			_, err := repo.Users().Create(ctx, &model.User{Username: name, Email: name + "@example.com"})
			gt.NoError(t, err).Required()
		}

		users, err := repo.Users().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, users).Length(3)
		for i, user := range users {
			gt.Value(t, user.Username).Equal(names[i])
		}
	})

	t.Run("returned users are copies", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Users().Create(ctx, &model.User{Username: "alice", Email: "alice@example.com"})
		gt.NoError(t, err).Required()
		created.Username = "mutated"

		found, err := repo.Users().GetByUsername(ctx, "alice")
		gt.NoError(t, err).Required()
		gt.Value(t, found.Username).Equal("alice")
	})
}

func TestPredictionRepository(t *testing.T) {
	ctx := context.Background()

	newPrediction := func(userID types.UserID, grade types.Grade) *model.Prediction {
		return &model.Prediction{
			UserID:         userID,
			Grade:          grade,
			Confidence:     0.8,
			Probabilities:  [types.GradeCount]float64{0.05, 0.05, 0.8, 0.05, 0.05},
			Interpretation: grade.Interpretation(),
		}
	}

	t.Run("Append assigns sequential IDs and timestamps", func(t *testing.T) {
		repo := memory.New()

		first, err := repo.Predictions().Append(ctx, newPrediction(1, 2))
		gt.NoError(t, err).Required()
		gt.Value(t, first.ID).Equal(types.PredictionID(1))
		gt.Bool(t, first.CreatedAt.IsZero()).False()

		second, err := repo.Predictions().Append(ctx, newPrediction(1, 3))
		gt.NoError(t, err).Required()
		gt.Value(t, second.ID).Equal(types.PredictionID(2))
	})

	t.Run("ListByUser filters and preserves order", func(t *testing.T) {
		repo := memory.New()

		for i := 0; i < 3; i++ {
			_, err := repo.Predictions().Append(ctx, newPrediction(1, types.Grade(i)))
			gt.NoError(t, err).Required()
		}
		_, err := repo.Predictions().Append(ctx, newPrediction(2, 4))
		gt.NoError(t, err).Required()

		records, err := repo.Predictions().ListByUser(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(3)
		for i, record := range records {
			gt.Value(t, record.Grade).Equal(types.Grade(i))
			gt.Value(t, record.UserID).Equal(types.UserID(1))
		}

		empty, err := repo.Predictions().ListByUser(ctx, 99)
		gt.NoError(t, err).Required()
		gt.Array(t, empty).Length(0)
	})

	t.Run("ListAll returns every record", func(t *testing.T) {
		repo := memory.New()

		for i := 0; i < 4; i++ {
			_, err := repo.Predictions().Append(ctx, newPrediction(types.UserID(i%2+1), 2))
			gt.NoError(t, err).Required()
		}

		records, err := repo.Predictions().ListAll(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(4)
		for i, record := range records {
			gt.Value(t, record.ID).Equal(types.PredictionID(i + 1))
		}
	})
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Put and Get", func(t *testing.T) {
		repo := memory.New()

		session := auth.NewSession(1, "alice", false)
		gt.NoError(t, repo.PutSession(ctx, session)).Required()

		found, err := repo.GetSession(ctx, session.Token)
		gt.NoError(t, err).Required()
		gt.Value(t, found.UserID).Equal(types.UserID(1))
		gt.Value(t, found.Username).Equal("alice")
	})

	t.Run("Get unknown token fails", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.GetSession(ctx, "no-such-token")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrSessionNotFound)).True()
	})

	t.Run("Delete removes session", func(t *testing.T) {
		repo := memory.New()

		session := auth.NewSession(1, "alice", false)
		gt.NoError(t, repo.PutSession(ctx, session)).Required()
		gt.NoError(t, repo.DeleteSession(ctx, session.Token)).Required()

		_, err := repo.GetSession(ctx, session.Token)
		gt.Value(t, err).NotNil()

		err = repo.DeleteSession(ctx, session.Token)
		gt.Bool(t, errors.Is(err, interfaces.ErrSessionNotFound)).True()
	})

	t.Run("invalid session is rejected", func(t *testing.T) {
		repo := memory.New()

		err := repo.PutSession(ctx, &auth.Session{Token: "", UserID: 1, Username: "alice"})
		gt.Value(t, err).NotNil()
	})
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.SeedDemoData(ctx)).Required()

	users, err := repo.Users().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, users).Length(2)
	gt.Value(t, users[0].Username).Equal("admin")
	gt.Bool(t, users[0].IsAdmin).True()
	gt.Value(t, users[1].Username).Equal("user1")
	gt.Bool(t, users[1].IsAdmin).False()

	records, err := repo.Predictions().ListByUser(ctx, users[1].ID)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(1)
	gt.Value(t, records[0].Grade).Equal(types.Grade(2))
}
