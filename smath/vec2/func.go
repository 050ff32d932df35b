package vec2

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/scalar"
)

// Map applies f to every component of v and returns the results as a new
// vector. The component type of the result may differ from that of v.
func Map[T, A core.Scalar](v Vec[T], f func(T) A) Vec[A] {
	return Vec[A]{f(v.X), f(v.Y)}
}

// Zip applies f to every same-indexed pair of components of a and b.
func Zip[T, A core.Scalar](a, b Vec[T], f func(T, T) A) Vec[A] {
	return Vec[A]{f(a.X, b.X), f(a.Y, b.Y)}
}

// Sqrt returns the square root of every component.
func Sqrt[T core.Number](v Vec[T]) Vec[T] {
	return Map(v, scalar.Sqrt[T])
}

// Abs returns the absolute value of every component.
func Abs[T core.Number](v Vec[T]) Vec[T] {
	return Map(v, scalar.Abs[T])
}

// Floor returns every component rounded down with scalar.Floor.
func Floor[T core.Number](v Vec[T]) Vec[T] {
	return Map(v, scalar.Floor[T])
}

// Ceil returns every component rounded up with scalar.Ceil.
func Ceil[T core.Number](v Vec[T]) Vec[T] {
	return Map(v, scalar.Ceil[T])
}

// Round returns every component rounded with scalar.Round.
func Round[T core.Number](v Vec[T]) Vec[T] {
	return Map(v, scalar.Round[T])
}

// Log returns the natural logarithm of every component.
func Log[T core.Number](v Vec[T]) Vec[T] {
	return Map(v, scalar.Log[T])
}

// Radians returns every component converted from degrees to radians.
func Radians[T core.Float](v Vec[T]) Vec[T] {
	return Map(v, scalar.Radians[T])
}

// Degrees returns every component converted from radians to degrees.
func Degrees[T core.Float](v Vec[T]) Vec[T] {
	return Map(v, scalar.Degrees[T])
}

// InvSqrt returns the approximate inverse square root of every component.
func InvSqrt[T core.Float](v Vec[T]) Vec[T] {
	return Map(v, scalar.InvSqrt[T])
}

// Min returns the componentwise minimum of a and b.
func Min[T core.Number](a, b Vec[T]) Vec[T] {
	return Zip(a, b, scalar.Min[T])
}

// Max returns the componentwise maximum of a and b.
func Max[T core.Number](a, b Vec[T]) Vec[T] {
	return Zip(a, b, scalar.Max[T])
}

// Clamp limits every component of v to [lo, hi].
func Clamp[T core.Number](v Vec[T], lo, hi T) Vec[T] {
	return Map(v, func(x T) T { return scalar.Clamp(x, lo, hi) })
}
