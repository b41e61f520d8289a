package taskgen

import "math/rand/v2"

// Mul produces multiplication tasks. The product is not constrained.
type Mul[T Number] struct {
	factors Uniform[T]
	rng     *rand.Rand
}

var _ Generator[int] = (*Mul[int])(nil)

// NewMul returns a multiplication generator with both factors drawn from
// [factorMin, factorMax]. Integer ranges whose products would not fit in T
// are rejected with ErrRangeOverflow.
func NewMul[T Number](factorMin, factorMax T, opts ...Option) (*Mul[T], error) {
	factors, err := NewUniform(factorMin, factorMax)
	if err != nil {
		return nil, err
	}

	// The extreme products sit on the corners of the range.
	if mulOverflows(factorMin, factorMin) ||
		mulOverflows(factorMin, factorMax) ||
		mulOverflows(factorMax, factorMax) {
		return nil, ErrRangeOverflow
	}

	o := buildOptions(opts)
	return &Mul[T]{
		factors: factors,
		rng:     rand.New(o.src),
	}, nil
}

// Next returns a task "<left> * <right>".
func (g *Mul[T]) Next() Task[T] {
	left := g.factors.Sample(g.rng)
	right := g.factors.Sample(g.rng)
	return newTask(OpMul, left, right, left*right)
}
