package drill

import (
	"testing"

	"github.com/abhisek/mathdrill/internal/taskgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input   string
		want    Operation
		wantErr bool
	}{
		{"add", OpAddition, false},
		{"Addition", OpAddition, false},
		{" SUB ", OpSubtraction, false},
		{"multiplication", OpMultiplication, false},
		{"div", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationSpec_Bounds(t *testing.T) {
	lo, hi := OperationSpec{Op: OpAddition, Max: 20}.Bounds()
	assert.Equal(t, Number(0), lo)
	assert.Equal(t, Number(20), hi)

	lo, hi = OperationSpec{Op: OpAddition, Max: 20, Negative: true}.Bounds()
	assert.Equal(t, Number(-20), lo)
	assert.Equal(t, Number(20), hi)
}

func TestOperationSpec_String(t *testing.T) {
	assert.Equal(t, "Addition, results from 0 to 20",
		OperationSpec{Op: OpAddition, Max: 20}.String())
	assert.Equal(t, "Multiplication, factors from -9 to 9",
		OperationSpec{Op: OpMultiplication, Max: 9, Negative: true}.String())
}

func TestOperationSpec_Validate(t *testing.T) {
	assert.NoError(t, OperationSpec{Op: OpSubtraction, Max: 100}.Validate())
	assert.ErrorIs(t, OperationSpec{Op: OpAddition, Max: 0}.Validate(), ErrNonPositiveMax)
	assert.ErrorIs(t, OperationSpec{Op: OpAddition, Max: -3}.Validate(), ErrNonPositiveMax)
	assert.Error(t, OperationSpec{Op: "div", Max: 3}.Validate())

	// Factors this large overflow int64 products.
	err := OperationSpec{Op: OpMultiplication, Max: 1 << 40}.Validate()
	assert.ErrorIs(t, err, taskgen.ErrRangeOverflow)
}

func TestPlan_Validate(t *testing.T) {
	assert.ErrorIs(t, Plan{Count: 10}.Validate(), ErrNoOperations)

	ops := []OperationSpec{{Op: OpAddition, Max: 10}}
	assert.ErrorIs(t, Plan{Operations: ops}.Validate(), ErrInvalidCount)
	assert.NoError(t, Plan{Operations: ops, Count: 1}.Validate())
}

func TestPlan_Generator(t *testing.T) {
	plan := Plan{
		Operations: []OperationSpec{
			{Op: OpAddition, Max: 20},
			{Op: OpSubtraction, Max: 20, Negative: true},
			{Op: OpMultiplication, Max: 10},
		},
		Count: 10,
		Seed:  17,
	}

	gen, err := plan.Generator()
	require.NoError(t, err)

	seen := make(map[taskgen.Operator]bool)
	for range 300 {
		task := gen.Next()
		seen[task.Op] = true
		switch task.Op {
		case taskgen.OpAdd:
			require.LessOrEqual(t, task.Left+task.Right, Number(20))
			require.GreaterOrEqual(t, task.Left, Number(0))
		case taskgen.OpSub:
			require.GreaterOrEqual(t, task.Left-task.Right, Number(-20))
		case taskgen.OpMul:
			require.LessOrEqual(t, task.Left, Number(10))
			require.LessOrEqual(t, task.Right, Number(10))
		}
	}
	assert.Len(t, seen, 3)
}

func TestPlan_GeneratorSeeded(t *testing.T) {
	plan := Plan{
		Operations: []OperationSpec{{Op: OpAddition, Max: 1000}, {Op: OpMultiplication, Max: 30}},
		Count:      5,
		Seed:       2024,
	}

	g1, err := plan.Generator()
	require.NoError(t, err)
	g2, err := plan.Generator()
	require.NoError(t, err)

	for range 20 {
		assert.Equal(t, g1.Next().Text, g2.Next().Text)
	}
}

func TestPlan_GeneratorReportsOperation(t *testing.T) {
	plan := Plan{
		Operations: []OperationSpec{{Op: OpAddition, Max: 5}, {Op: OpAddition, Max: 0}},
		Count:      1,
	}
	_, err := plan.Generator()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation 2")
	assert.ErrorIs(t, err, ErrNonPositiveMax)
}
