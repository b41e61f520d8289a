package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/taskgen"
)

// Config holds settings read from the environment. Command-line flags take
// precedence over these values.
type Config struct {
	// Count is the default number of tasks per drill.
	Count int `env:"MATHDRILL_COUNT"`

	// Seed makes drills reproducible. Zero means a fresh random seed.
	Seed uint64 `env:"MATHDRILL_SEED" envDefault:"0"`

	// MaxAttempts caps rejection sampling per task.
	MaxAttempts int `env:"MATHDRILL_MAX_ATTEMPTS"`

	// NoColor disables colored output in line mode.
	NoColor bool `env:"MATHDRILL_NO_COLOR" envDefault:"false"`
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Count:       drill.DefaultTaskCount,
		MaxAttempts: taskgen.DefaultMaxAttempts,
	}
}

// Load reads the configuration from environment variables. Unset variables
// keep their Default value.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no drill can run with.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("MATHDRILL_COUNT=%d: %w", c.Count, drill.ErrInvalidCount)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MATHDRILL_MAX_ATTEMPTS=%d: must be greater than zero", c.MaxAttempts)
	}
	return nil
}

// Plan returns an empty drill plan carrying the configured defaults.
func (c Config) Plan() drill.Plan {
	return drill.Plan{
		Count:       c.Count,
		Seed:        c.Seed,
		MaxAttempts: c.MaxAttempts,
	}
}
