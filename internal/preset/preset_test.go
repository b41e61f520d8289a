package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/drill"
)

func TestParse_Valid(t *testing.T) {
	p, err := Parse([]byte(`{
		"count": 15,
		"seed": 9,
		"operations": [
			{"op": "add", "max": 50},
			{"op": "mul", "max": 12, "negative": true}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, 15, p.Count)
	assert.Equal(t, uint64(9), p.Seed)
	require.Len(t, p.Operations, 2)
	assert.Equal(t, Operation{Op: "mul", Max: 12, Negative: true}, p.Operations[1])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"operations": [`},
		{"missing operations", `{"count": 3}`},
		{"empty operations", `{"operations": []}`},
		{"unknown op", `{"operations": [{"op": "div", "max": 3}]}`},
		{"zero max", `{"operations": [{"op": "add", "max": 0}]}`},
		{"fractional max", `{"operations": [{"op": "add", "max": 2.5}]}`},
		{"zero count", `{"count": 0, "operations": [{"op": "add", "max": 3}]}`},
		{"unknown field", `{"level": 3, "operations": [{"op": "add", "max": 3}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			var invalid *InvalidPresetError
			assert.True(t, errors.As(err, &invalid), "want *InvalidPresetError, got %T", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"operations": [{"op": "sub", "max": 20}]}`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p.Operations, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	p := &Preset{
		Count: 5,
		Operations: []Operation{
			{Op: "add", Max: 20},
			{Op: "sub", Max: 10, Negative: true},
		},
	}

	plan, err := p.Apply(drill.Plan{Count: 10, Seed: 4, MaxAttempts: 100})
	require.NoError(t, err)
	assert.Equal(t, 5, plan.Count)
	assert.Equal(t, uint64(4), plan.Seed)
	assert.Equal(t, 100, plan.MaxAttempts)
	assert.Equal(t, []drill.OperationSpec{
		{Op: drill.OpAddition, Max: 20},
		{Op: drill.OpSubtraction, Max: 10, Negative: true},
	}, plan.Operations)
	require.NoError(t, plan.Validate())
}

func TestApply_KeepsPlanCount(t *testing.T) {
	p := &Preset{Operations: []Operation{{Op: "mul", Max: 9}}}
	plan, err := p.Apply(drill.Plan{Count: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, plan.Count)
}

func TestApply_RejectsOverflow(t *testing.T) {
	p := &Preset{Operations: []Operation{{Op: "mul", Max: 1 << 40}}}
	_, err := p.Apply(drill.Plan{Count: 1})
	assert.Error(t, err)
}
