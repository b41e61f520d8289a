package taskgen

import "math/rand/v2"

// Add produces addition tasks whose sum stays within a result range.
type Add[T Number] struct {
	resultMin   T
	resultMax   T
	operands    Uniform[T]
	maxAttempts int
	rng         *rand.Rand
}

var _ Generator[int] = (*Add[int])(nil)

// NewAdd returns an addition generator. Both operands are drawn from
// [resultMin, resultMax] and pairs whose sum exceeds resultMax are redrawn.
func NewAdd[T Number](resultMin, resultMax T, opts ...Option) (*Add[T], error) {
	operands, err := NewUniform(resultMin, resultMax)
	if err != nil {
		return nil, err
	}

	// The smallest possible sum must fit under the ceiling.
	var zero T
	floor := resultMin + resultMin
	if addOverflows(resultMin, resultMin, floor) {
		if resultMin > zero {
			return nil, ErrUnsatisfiable
		}
	} else if floor > resultMax {
		return nil, ErrUnsatisfiable
	}

	o := buildOptions(opts)
	return &Add[T]{
		resultMin:   resultMin,
		resultMax:   resultMax,
		operands:    operands,
		maxAttempts: o.maxAttempts,
		rng:         rand.New(o.src),
	}, nil
}

// Next returns a task "<left> + <right>".
func (g *Add[T]) Next() Task[T] {
	for range g.maxAttempts {
		left := g.operands.Sample(g.rng)
		right := g.operands.Sample(g.rng)
		sum := left + right
		if addOverflows(left, right, sum) || sum > g.resultMax {
			continue
		}
		return newTask(OpAdd, left, right, sum)
	}
	return g.fallback()
}

// fallback builds a valid pair directly: left leaves room for at least
// resultMin under the ceiling, right fills at most the remaining room.
func (g *Add[T]) fallback() Task[T] {
	lo, hi := g.resultMin, g.resultMax

	leftMax := hi - lo
	if subOverflows(hi, lo, leftMax) || leftMax > hi {
		leftMax = hi
	}
	left := newUniform(lo, leftMax).Sample(g.rng)

	rightMax := hi - left
	if subOverflows(hi, left, rightMax) || rightMax > hi {
		rightMax = hi
	}
	rights := newUniform(lo, rightMax)
	for {
		right := rights.Sample(g.rng)
		sum := left + right
		if !addOverflows(left, right, sum) {
			return newTask(OpAdd, left, right, sum)
		}
	}
}
