package taskgen

import "math/rand/v2"

// Mixed delegates each call to one of its members, chosen uniformly. Every
// member has the same chance, so two Add generators and one Mul make
// addition twice as likely as multiplication.
type Mixed[T Number] struct {
	members []Generator[T]
	rng     *rand.Rand
}

var _ Generator[int] = (*Mixed[int])(nil)

// NewMixed returns a mixture over gens. The mixture takes ownership of the
// members; callers must not use them afterwards.
func NewMixed[T Number](gens []Generator[T], opts ...Option) (*Mixed[T], error) {
	if len(gens) == 0 {
		return nil, ErrEmptyMixture
	}
	for _, g := range gens {
		if g == nil {
			return nil, ErrNilGenerator
		}
	}

	o := buildOptions(opts)
	return &Mixed[T]{
		members: append([]Generator[T](nil), gens...),
		rng:     rand.New(o.src),
	}, nil
}

// Next returns the next task of a uniformly chosen member.
func (m *Mixed[T]) Next() Task[T] {
	return m.members[m.rng.IntN(len(m.members))].Next()
}
