package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

// Grading holds CLI flags for the optional grading configuration file
type Grading struct {
	path string
}

// GradingConfig is the TOML-defined tuning surface of the dashboard:
// interpretation texts, artificial latency and upload limits.
type GradingConfig struct {
	Interpretations []string `toml:"interpretations"`

	Latency struct {
		AuthMs    int64 `toml:"auth_ms"`
		PredictMs int64 `toml:"predict_ms"`
	} `toml:"latency"`

	Upload struct {
		MaxSizeMB    int64    `toml:"max_size_mb"`
		AllowedTypes []string `toml:"allowed_types"`
	} `toml:"upload"`
}

// Flags returns CLI flags for grading configuration
func (g *Grading) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "grading-config",
			Usage:       "Path to grading configuration TOML file",
			Sources:     cli.EnvVars("KNEE_XRAY_GRADING_CONFIG"),
			Destination: &g.path,
		},
	}
}

// DefaultGradingConfig returns the built-in configuration
func DefaultGradingConfig() *GradingConfig {
	cfg := &GradingConfig{}
	cfg.Latency.AuthMs = 500
	cfg.Latency.PredictMs = 1500
	cfg.Upload.MaxSizeMB = 10
	cfg.Upload.AllowedTypes = []string{".png", ".jpg", ".jpeg"}
	return cfg
}

// Configure loads and validates the grading configuration. Without a path
// it returns the defaults.
func (g *Grading) Configure() (*GradingConfig, error) {
	if g.path == "" {
		return DefaultGradingConfig(), nil
	}
	return LoadGradingConfig(g.path)
}

// LoadGradingConfig loads the grading configuration from a TOML file.
// Unset fields keep their default values.
func LoadGradingConfig(path string) (*GradingConfig, error) {
	cfg := DefaultGradingConfig()

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(ErrConfigNotFound, "failed to read grading config", goerr.V("path", path))
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "grading config validation failed", goerr.V("path", path))
	}

	return cfg, nil
}

// Validate checks if the GradingConfig is valid
func (c *GradingConfig) Validate() error {
	if n := len(c.Interpretations); n != 0 && n != types.GradeCount {
		return goerr.Wrap(ErrInvalidConfig, "interpretations must list one text per grade",
			goerr.V("count", n), goerr.V("expected", types.GradeCount))
	}
	if c.Latency.AuthMs < 0 || c.Latency.PredictMs < 0 {
		return goerr.Wrap(ErrInvalidConfig, "latency must not be negative")
	}
	if c.Upload.MaxSizeMB <= 0 {
		return goerr.Wrap(ErrInvalidConfig, "upload max size must be positive",
			goerr.V("max_size_mb", c.Upload.MaxSizeMB))
	}
	if len(c.Upload.AllowedTypes) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one allowed upload type is required")
	}
	return nil
}

// InterpretationTexts returns the per-grade texts, falling back to the
// built-in Kellgren-Lawrence readings
func (c *GradingConfig) InterpretationTexts() [types.GradeCount]string {
	if len(c.Interpretations) != types.GradeCount {
		return types.DefaultInterpretations()
	}
	var texts [types.GradeCount]string
	copy(texts[:], c.Interpretations)
	return texts
}

// AuthDelay returns the artificial latency of auth and read operations
func (c *GradingConfig) AuthDelay() time.Duration {
	return time.Duration(c.Latency.AuthMs) * time.Millisecond
}

// PredictDelay returns the artificial latency of classification
func (c *GradingConfig) PredictDelay() time.Duration {
	return time.Duration(c.Latency.PredictMs) * time.Millisecond
}

// MaxUploadBytes returns the upload size limit in bytes
func (c *GradingConfig) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB << 20
}
