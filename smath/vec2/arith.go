package vec2

import "github.com/chapmankyle/simple-math/smath/core"

// Add returns the componentwise sum a + b.
func Add[T core.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X + b.X, a.Y + b.Y}
}

// AddScalar returns v + s with s broadcast to every component.
func AddScalar[T core.Number](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X + s, v.Y + s}
}

// ScalarAdd returns s + v with s broadcast to every component.
func ScalarAdd[T core.Number](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s + v.X, s + v.Y}
}

// Sub returns a - b componentwise.
func Sub[T core.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X - b.X, a.Y - b.Y}
}

// SubScalar returns v - s.
func SubScalar[T core.Number](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X - s, v.Y - s}
}

// ScalarSub returns s - v.
func ScalarSub[T core.Number](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s - v.X, s - v.Y}
}

// Mul returns a * b componentwise.
func Mul[T core.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X * b.X, a.Y * b.Y}
}

// MulScalar returns v * s.
func MulScalar[T core.Number](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X * s, v.Y * s}
}

// ScalarMul returns s * v.
func ScalarMul[T core.Number](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s * v.X, s * v.Y}
}

// Div returns a / b componentwise.
func Div[T core.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X / b.X, a.Y / b.Y}
}

// DivScalar returns v / s.
func DivScalar[T core.Number](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X / s, v.Y / s}
}

// ScalarDiv returns s / v.
func ScalarDiv[T core.Number](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s / v.X, s / v.Y}
}

// AddAssign performs v += u componentwise and returns v, so calls
// can be chained.
func AddAssign[T core.Number](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X += u.X
	v.Y += u.Y
	return v
}

// AddAssignScalar performs v += s on every component and returns v.
func AddAssignScalar[T core.Number](v *Vec[T], s T) *Vec[T] {
	v.X += s
	v.Y += s
	return v
}

// SubAssign performs v -= u and returns v.
func SubAssign[T core.Number](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X -= u.X
	v.Y -= u.Y
	return v
}

// SubAssignScalar performs v -= s and returns v.
func SubAssignScalar[T core.Number](v *Vec[T], s T) *Vec[T] {
	v.X -= s
	v.Y -= s
	return v
}

// MulAssign performs v *= u and returns v.
func MulAssign[T core.Number](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X *= u.X
	v.Y *= u.Y
	return v
}

// MulAssignScalar performs v *= s and returns v.
func MulAssignScalar[T core.Number](v *Vec[T], s T) *Vec[T] {
	v.X *= s
	v.Y *= s
	return v
}

// DivAssign performs v /= u and returns v.
func DivAssign[T core.Number](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X /= u.X
	v.Y /= u.Y
	return v
}

// DivAssignScalar performs v /= s and returns v.
func DivAssignScalar[T core.Number](v *Vec[T], s T) *Vec[T] {
	v.X /= s
	v.Y /= s
	return v
}

// Neg returns -v.
func Neg[T core.Number](v Vec[T]) Vec[T] {
	return Vec[T]{-v.X, -v.Y}
}

// Inc adds 1 to every component and returns v.
func Inc[T core.Number](v *Vec[T]) *Vec[T] {
	v.X++
	v.Y++
	return v
}

// Dec subtracts 1 from every component and returns v.
func Dec[T core.Number](v *Vec[T]) *Vec[T] {
	v.X--
	v.Y--
	return v
}

// PostInc adds 1 to every component and returns the value v held before.
func PostInc[T core.Number](v *Vec[T]) Vec[T] {
	old := *v
	Inc(v)
	return old
}

// PostDec subtracts 1 from every component and returns the value v held
// before.
func PostDec[T core.Number](v *Vec[T]) Vec[T] {
	old := *v
	Dec(v)
	return old
}
