package taskgen

import "math/rand/v2"

// Sub produces subtraction tasks whose difference stays within a result
// range.
type Sub[T Number] struct {
	resultMin   T
	lefts       Uniform[T]
	rights      Uniform[T]
	maxAttempts int
	rng         *rand.Rand
}

var _ Generator[int] = (*Sub[int])(nil)

// NewSub returns a subtraction generator. The minuend is drawn from
// [resultMin, resultMax], the subtrahend from [0, resultMax-resultMin], and
// pairs whose difference falls below resultMin are redrawn.
func NewSub[T Number](resultMin, resultMax T, opts ...Option) (*Sub[T], error) {
	lefts, err := NewUniform(resultMin, resultMax)
	if err != nil {
		return nil, err
	}

	var zero T
	span := resultMax - resultMin
	if span < zero || subOverflows(resultMax, resultMin, span) {
		return nil, ErrRangeOverflow
	}

	o := buildOptions(opts)
	return &Sub[T]{
		resultMin:   resultMin,
		lefts:       lefts,
		rights:      newUniform(zero, span),
		maxAttempts: o.maxAttempts,
		rng:         rand.New(o.src),
	}, nil
}

// Next returns a task "<left> - <right>".
func (g *Sub[T]) Next() Task[T] {
	for range g.maxAttempts {
		left := g.lefts.Sample(g.rng)
		right := g.rights.Sample(g.rng)
		diff := left - right
		if subOverflows(left, right, diff) || diff < g.resultMin {
			continue
		}
		return newTask(OpSub, left, right, diff)
	}
	return g.fallback()
}

// fallback draws the subtrahend from [0, left-resultMin], which never
// crosses the floor.
func (g *Sub[T]) fallback() Task[T] {
	var zero T
	left := g.lefts.Sample(g.rng)
	right := newUniform(zero, left-g.resultMin).Sample(g.rng)
	return newTask(OpSub, left, right, left-right)
}
