package taskgen

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types a generator can produce tasks for.
// Every member is ordered, supports + - *, has a zero value, prints with
// fmt, parses with ParseNumber and can be sampled with Uniform.
type Number interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether T is a floating point kind.
func isFloat[T Number]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// isNaN reports whether v is a float NaN. Integer kinds are never NaN.
func isNaN[T Number](v T) bool {
	return v != v
}

// isInf reports whether v is a float infinity. Integer kinds are never
// infinite.
func isInf[T Number](v T) bool {
	return isFloat[T]() && math.IsInf(float64(v), 0)
}

// ParseNumber parses s as a T. Leading and trailing whitespace is ignored.
// Parsing is by numeric value, so "007" and "7" yield the same integer.
func ParseNumber[T Number](s string) (T, error) {
	s = strings.TrimSpace(s)
	typ := reflect.TypeFor[T]()
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", typ, err)
		}
		return T(n), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", typ, err)
		}
		return T(n), nil

	default:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", typ, err)
		}
		return T(f), nil
	}
}

// FormatNumber renders v the way task text renders operands.
func FormatNumber[T Number](v T) string {
	return fmt.Sprint(v)
}

// addOverflows reports whether sum = a + b wrapped around, or for float
// kinds, rounded to an infinity.
func addOverflows[T Number](a, b, sum T) bool {
	var zero T
	if isInf(sum) {
		return true
	}
	return (b > zero && sum < a) || (b < zero && sum > a)
}

// subOverflows reports whether diff = a - b wrapped around, or for float
// kinds, rounded to an infinity.
func subOverflows[T Number](a, b, diff T) bool {
	var zero T
	if isInf(diff) {
		return true
	}
	return (b > zero && diff > a) || (b < zero && diff < a)
}

// mulOverflows reports whether a * b does not fit in T. Float kinds never
// report overflow.
func mulOverflows[T Number](a, b T) bool {
	var zero T
	if isFloat[T]() || a == zero || b == zero {
		return false
	}
	p := a * b
	if p/b != a {
		return true
	}
	if (a < zero) == (b < zero) {
		return p < zero
	}
	return p > zero
}
