package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/repository/memory"
	"github.com/Sujal861/knee-xray-insight-system/pkg/service/classifier"
	"github.com/Sujal861/knee-xray-insight-system/pkg/usecase"
)

func newUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(), usecase.WithLatency(0, 0))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates non-admin account", func(t *testing.T) {
		uc := newUseCases(t)

		user, err := uc.Register(ctx, "alice", "alice@example.com", "pw")
		gt.NoError(t, err).Required()
		gt.Value(t, user.Username).Equal("alice")
		gt.Bool(t, user.IsAdmin).False()
	})

	t.Run("duplicate username fails", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "alice", "alice@example.com", "pw")
		gt.NoError(t, err).Required()

		_, err = uc.Register(ctx, "alice", "other@example.com", "pw")
		gt.Bool(t, errors.Is(err, interfaces.ErrUsernameExists)).True()
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "a", "x@y.com", "pw")
		gt.NoError(t, err).Required()

		_, err = uc.Register(ctx, "b", "x@y.com", "pw")
		gt.Bool(t, errors.Is(err, interfaces.ErrEmailExists)).True()
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "", "a@b.com", "pw")
		gt.Value(t, err).NotNil()

		_, err = uc.Register(ctx, "a", "", "pw")
		gt.Value(t, err).NotNil()
	})
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("login issues session for known user", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "alice", "alice@example.com", "pw")
		gt.NoError(t, err).Required()

		session, err := uc.Login(ctx, "alice", "any-password-passes")
		gt.NoError(t, err).Required()
		gt.String(t, session.Token.String()).NotEqual("")
		gt.Value(t, session.Username).Equal("alice")
		gt.Value(t, uc.Session().Current().Token).Equal(session.Token)
	})

	t.Run("login with unknown user fails without state change", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Login(ctx, "ghost", "pw")
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidCredentials)).True()
		gt.Value(t, uc.Session().Current()).Nil()
	})

	t.Run("new login replaces previous session", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "alice", "alice@example.com", "pw")
		gt.NoError(t, err).Required()
		_, err = uc.Register(ctx, "bob", "bob@example.com", "pw")
		gt.NoError(t, err).Required()

		first, err := uc.Login(ctx, "alice", "pw")
		gt.NoError(t, err).Required()

		second, err := uc.Login(ctx, "bob", "pw")
		gt.NoError(t, err).Required()

		gt.Value(t, uc.Session().Current().Username).Equal("bob")

		// The first token is no longer valid
		_, err = uc.ValidateToken(ctx, first.Token)
		gt.Value(t, err).NotNil()

		_, err = uc.ValidateToken(ctx, second.Token)
		gt.NoError(t, err)
	})

	t.Run("logout clears session and is idempotent", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "alice", "alice@example.com", "pw")
		gt.NoError(t, err).Required()
		_, err = uc.Login(ctx, "alice", "pw")
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Logout(ctx)).Required()
		gt.Value(t, uc.Session().Current()).Nil()

		// Logging out while logged out is a no-op
		gt.NoError(t, uc.Logout(ctx))
	})
}

func TestPredict(t *testing.T) {
	ctx := context.Background()

	input := classifier.FileInput{
		Name:           "xray1.png",
		SizeBytes:      204800,
		LastModifiedMs: 1700000000000,
	}

	t.Run("anonymous prediction is returned but not recorded", func(t *testing.T) {
		uc := newUseCases(t)

		out, err := uc.Predict(ctx, input)
		gt.NoError(t, err).Required()
		gt.Bool(t, out.Recorded).False()
		gt.Value(t, out.Record).Nil()
		gt.NoError(t, out.Result.Grade.Validate())
	})

	t.Run("logged-in predictions build append-only history", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Register(ctx, "alice", "alice@example.com", "pw")
		gt.NoError(t, err).Required()
		_, err = uc.Login(ctx, "alice", "pw")
		gt.NoError(t, err).Required()

		inputs := []classifier.FileInput{
			{Name: "scan-a.png", SizeBytes: 100},
			{Name: "scan-b.png", SizeBytes: 233},
			{Name: "scan-c.png", SizeBytes: 377},
		}
		var grades []int
		for _, in := range inputs {
			out, err := uc.Predict(ctx, in)
			gt.NoError(t, err).Required()
			gt.Bool(t, out.Recorded).True()
			gt.Value(t, out.Record).NotNil()
			grades = append(grades, out.Result.Grade.Index())
		}

		entries, err := uc.History(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(3)
		for i, entry := range entries {
			gt.Value(t, entry.Results.Grade.Index()).Equal(grades[i])
			gt.Value(t, entry.Confidence).Equal(entry.Results.Confidence)
			gt.Value(t, entry.Results.Probabilities[entry.Results.Grade]).Equal(entry.Confidence)
		}
	})

	t.Run("identical file yields identical diagnosis", func(t *testing.T) {
		uc := newUseCases(t)

		first, err := uc.Predict(ctx, input)
		gt.NoError(t, err).Required()
		second, err := uc.Predict(ctx, input)
		gt.NoError(t, err).Required()

		gt.Value(t, first.Result.Grade).Equal(second.Result.Grade)
		gt.Value(t, first.Result.Probabilities).Equal(second.Result.Probabilities)
	})

	t.Run("history without session fails", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.History(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrNotLoggedIn)).True()
	})
}

func TestAdminGate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *usecase.UseCases {
		t.Helper()
		repo := memory.New()
		gt.NoError(t, repo.SeedDemoData(ctx)).Required()
		return usecase.New(repo, usecase.WithLatency(0, 0))
	}

	t.Run("no session is rejected", func(t *testing.T) {
		uc := setup(t)

		_, err := uc.ListUsers(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrUnauthorized)).True()

		_, err = uc.ListPredictions(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrUnauthorized)).True()
	})

	t.Run("non-admin session is rejected", func(t *testing.T) {
		uc := setup(t)

		_, err := uc.Login(ctx, "user1", "pw")
		gt.NoError(t, err).Required()

		_, err = uc.ListUsers(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrUnauthorized)).True()

		_, err = uc.ListPredictions(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrUnauthorized)).True()
	})

	t.Run("admin session passes", func(t *testing.T) {
		uc := setup(t)

		_, err := uc.Login(ctx, "admin", "pw")
		gt.NoError(t, err).Required()

		users, err := uc.ListUsers(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, users).Length(2)

		records, err := uc.ListPredictions(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(1)
		gt.Value(t, records[0].Username).Equal("user1")
	})
}
