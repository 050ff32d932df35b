package scalar

import (
	"math"

	"github.com/chapmankyle/simple-math/smath/core"
)

// Abs returns a if a >= 0, otherwise -a.
func Abs[T core.Number](a T) T {
	if a >= 0 {
		return a
	}
	return -a
}

// Round returns a rounded to the nearest integral value by adding 0.5 and
// truncating toward zero. Integer inputs are returned unchanged.
func Round[T core.Number](a T) T {
	if core.IsInteger[T]() {
		return a
	}
	return T(math.Trunc(float64(a) + 0.5))
}

// RoundNearest rounds a to the closest multiple of nearest. The division
// is always carried out in floating point.
func RoundNearest[T core.Number](a T, nearest int) T {
	n := float64(nearest)
	return T(Round(float64(a)/n) * n)
}

// Floor rounds a downwards. Integer inputs are returned unchanged; see the
// package documentation for the floating-point policy.
func Floor[T core.Number](a T) T {
	if core.IsInteger[T]() {
		return a
	}
	if a > 0 {
		return T(math.Trunc(float64(a)))
	}
	return T(math.Trunc(float64(a) - 1))
}

// Ceil rounds a upwards. Integer inputs are returned unchanged; see the
// package documentation for the floating-point policy.
func Ceil[T core.Number](a T) T {
	if core.IsInteger[T]() {
		return a
	}
	if a > 0 {
		return T(math.Trunc(float64(a) + 1))
	}
	return T(math.Trunc(float64(a)))
}

// Scale maps x from the range [a, b] onto the range [c, d].
//
// Integer inputs are scaled in floating point and rounded back with Round.
// a == b is not checked.
func Scale[T core.Number](x, a, b, c, d T) T {
	if core.IsInteger[T]() {
		r := (float64(d) - float64(c)) * ((float64(x) - float64(a)) / (float64(b) - float64(a)))
		return T(Round(r + float64(c)))
	}
	return (d-c)*((x-a)/(b-a)) + c
}
