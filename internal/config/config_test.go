package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/drill"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MATHDRILL_COUNT", "25")
	t.Setenv("MATHDRILL_SEED", "12345")
	t.Setenv("MATHDRILL_MAX_ATTEMPTS", "50")
	t.Setenv("MATHDRILL_NO_COLOR", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Count)
	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, 50, cfg.MaxAttempts)
	assert.True(t, cfg.NoColor)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"count not a number", "MATHDRILL_COUNT", "ten"},
		{"zero count", "MATHDRILL_COUNT", "0"},
		{"negative seed", "MATHDRILL_SEED", "-1"},
		{"zero attempts", "MATHDRILL_MAX_ATTEMPTS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_Plan(t *testing.T) {
	cfg := Config{Count: 7, Seed: 3, MaxAttempts: 100}
	plan := cfg.Plan()
	assert.Equal(t, drill.Plan{Count: 7, Seed: 3, MaxAttempts: 100}, plan)
	assert.ErrorIs(t, plan.Validate(), drill.ErrNoOperations)
}

func TestLoad_PartialEnvKeepsDefaults(t *testing.T) {
	t.Setenv("MATHDRILL_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, drill.DefaultTaskCount, cfg.Count)
	assert.Equal(t, Default().MaxAttempts, cfg.MaxAttempts)
}
