package drill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/taskgen"
)

// Number is the numeric type drills are played with.
type Number = int64

// DefaultTaskCount is the number of tasks in a drill unless configured.
const DefaultTaskCount = 10

var (
	// ErrNoOperations means a plan has no operation to draw tasks from.
	ErrNoOperations = errors.New("you need to select at least one type of mathematical operation")

	// ErrInvalidCount means a plan asks for fewer than one task.
	ErrInvalidCount = errors.New("number of tasks must be greater than zero")

	// ErrNonPositiveMax means an operation's maximum is zero or negative.
	ErrNonPositiveMax = errors.New("must be greater than zero")
)

// Operation identifies one kind of task.
type Operation string

const (
	OpAddition       Operation = "add"
	OpSubtraction    Operation = "sub"
	OpMultiplication Operation = "mul"
)

// Operations lists every operation in menu order.
var Operations = []Operation{OpAddition, OpSubtraction, OpMultiplication}

// ParseOperation accepts the short id ("add") or the label ("Addition").
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, op := range Operations {
		if s == string(op) || s == strings.ToLower(op.Label()) {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q: must be add, sub or mul", s)
}

// Label returns the menu name of the operation.
func (o Operation) Label() string {
	switch o {
	case OpAddition:
		return "Addition"
	case OpSubtraction:
		return "Subtraction"
	case OpMultiplication:
		return "Multiplication"
	default:
		return string(o)
	}
}

// MaxPrompt returns the question asked for the operation's maximum.
func (o Operation) MaxPrompt() string {
	if o == OpMultiplication {
		return "Max value of factor"
	}
	return "Maximum result"
}

// OperationSpec is one operation chosen during setup.
type OperationSpec struct {
	Op Operation

	// Max is the largest result for addition and subtraction, or the
	// largest factor for multiplication.
	Max Number

	// Negative extends the lower bound from 0 to -Max.
	Negative bool
}

// Bounds returns the range handed to the generator.
func (s OperationSpec) Bounds() (lo, hi Number) {
	if s.Negative {
		return -s.Max, s.Max
	}
	return 0, s.Max
}

// String describes the operation for setup listings, e.g.
// "Addition, results from 0 to 20".
func (s OperationSpec) String() string {
	lo, hi := s.Bounds()
	noun := "results"
	if s.Op == OpMultiplication {
		noun = "factors"
	}
	return fmt.Sprintf("%s, %s from %d to %d", s.Op.Label(), noun, lo, hi)
}

// Generator builds the generator for this spec.
func (s OperationSpec) Generator(opts ...taskgen.Option) (taskgen.Generator[Number], error) {
	if s.Max <= 0 {
		return nil, fmt.Errorf("%s: %w", s.Op.MaxPrompt(), ErrNonPositiveMax)
	}
	lo, hi := s.Bounds()
	switch s.Op {
	case OpAddition:
		return taskgen.NewAdd(lo, hi, opts...)
	case OpSubtraction:
		return taskgen.NewSub(lo, hi, opts...)
	case OpMultiplication:
		return taskgen.NewMul(lo, hi, opts...)
	default:
		return nil, fmt.Errorf("unknown operation %q", s.Op)
	}
}

// Validate reports whether a generator can be built for the operation.
func (s OperationSpec) Validate() error {
	_, err := s.Generator(taskgen.WithSeed(0))
	return err
}

// Plan describes a drill: what to ask and how many times.
type Plan struct {
	Operations []OperationSpec
	Count      int

	// Seed makes the drill reproducible. Zero picks a random seed.
	Seed uint64

	// MaxAttempts caps rejection sampling. Zero keeps the default.
	MaxAttempts int
}

// Validate checks the plan before any generator is built.
func (p Plan) Validate() error {
	if len(p.Operations) == 0 {
		return ErrNoOperations
	}
	if p.Count <= 0 {
		return ErrInvalidCount
	}
	return nil
}

// Generator builds one generator per operation and mixes them. Every member
// gets its own stream derived from the plan seed.
func (p Plan) Generator() (taskgen.Generator[Number], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	gens := make([]taskgen.Generator[Number], 0, len(p.Operations))
	for i, spec := range p.Operations {
		g, err := spec.Generator(p.options(uint64(i) + 1)...)
		if err != nil {
			return nil, fmt.Errorf("operation %d (%s): %w", i+1, spec.Op.Label(), err)
		}
		gens = append(gens, g)
	}

	mixed, err := taskgen.NewMixed(gens, p.options(0)...)
	if err != nil {
		return nil, fmt.Errorf("mix operations: %w", err)
	}
	return mixed, nil
}

// streamStride spreads derived seeds apart.
const streamStride = 0x9e3779b97f4a7c15

func (p Plan) options(stream uint64) []taskgen.Option {
	opts := []taskgen.Option{taskgen.WithMaxAttempts(p.MaxAttempts)}
	if p.Seed != 0 {
		opts = append(opts, taskgen.WithSeed(p.Seed+stream*streamStride))
	}
	return opts
}
