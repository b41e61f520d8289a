package taskgen

import (
	"math"
	"math/rand/v2"
)

// Uniform samples values of T uniformly from a fixed range. Integer kinds
// sample the closed range [lo, hi]; float kinds sample [lo, hi).
type Uniform[T Number] struct {
	lo, hi T
	width  uint64
	float  bool
}

// NewUniform returns a sampler over [lo, hi]. It fails with a *RangeError
// when lo > hi or either bound is NaN, and with ErrRangeOverflow when either
// bound is infinite.
func NewUniform[T Number](lo, hi T) (Uniform[T], error) {
	if lo > hi || isNaN(lo) || isNaN(hi) {
		return Uniform[T]{}, &RangeError{Min: FormatNumber(lo), Max: FormatNumber(hi)}
	}
	if isInf(lo) || isInf(hi) {
		return Uniform[T]{}, ErrRangeOverflow
	}
	return newUniform(lo, hi), nil
}

// newUniform assumes lo <= hi.
func newUniform[T Number](lo, hi T) Uniform[T] {
	u := Uniform[T]{lo: lo, hi: hi, float: isFloat[T]()}
	if !u.float {
		// Unsigned arithmetic gives the exact width for every integer kind,
		// including signed ranges wider than T's positive half.
		u.width = uint64(hi) - uint64(lo)
	}
	return u
}

// Sample draws one value using r.
func (u Uniform[T]) Sample(r *rand.Rand) T {
	if u.float {
		if u.lo == u.hi {
			return u.lo
		}
		// Interpolating keeps finite bounds finite even when hi-lo is not
		// representable.
		f := r.Float64()
		v := T(float64(u.lo)*(1-f) + float64(u.hi)*f)
		if v >= u.hi || v < u.lo {
			return u.lo
		}
		return v
	}
	if u.width == math.MaxUint64 {
		return T(uint64(u.lo) + r.Uint64())
	}
	return T(uint64(u.lo) + r.Uint64N(u.width+1))
}
