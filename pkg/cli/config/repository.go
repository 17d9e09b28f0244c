package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/repository/memory"
)

// Repository holds CLI flags for backend selection. The flag is read once
// at process start; only the in-memory mock backend ships today, but a real
// networked backend can be slotted in behind the same interface.
type Repository struct {
	backend  string
	seedDemo bool
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("KNEE_XRAY_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.BoolFlag{
			Name:        "seed-demo",
			Usage:       "Seed demo accounts (admin, user1) and a sample prediction",
			Value:       true,
			Sources:     cli.EnvVars("KNEE_XRAY_SEED_DEMO"),
			Destination: &r.seedDemo,
		},
	}
}

// Configure initializes the repository based on the backend type
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "memory":
		repo := memory.New()
		if r.seedDemo {
			if err := repo.SeedDemoData(ctx); err != nil {
				return nil, goerr.Wrap(err, "failed to seed demo data")
			}
		}
		return repo, nil
	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "unsupported repository backend", goerr.V("backend", r.backend))
	}
}
