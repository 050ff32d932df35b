package mat2

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/vec2"
)

// Add returns the elementwise sum a + b.
func Add[T core.Number](a, b Mat[T]) Mat[T] {
	return FromRows(vec2.Add(a.rows[0], b.rows[0]), vec2.Add(a.rows[1], b.rows[1]))
}

// Sub returns the elementwise difference a - b.
func Sub[T core.Number](a, b Mat[T]) Mat[T] {
	return FromRows(vec2.Sub(a.rows[0], b.rows[0]), vec2.Sub(a.rows[1], b.rows[1]))
}

// Div returns the elementwise quotient a / b.
func Div[T core.Number](a, b Mat[T]) Mat[T] {
	return FromRows(vec2.Div(a.rows[0], b.rows[0]), vec2.Div(a.rows[1], b.rows[1]))
}

// Mul returns the matrix product a * b.
func Mul[T core.Number](a, b Mat[T]) Mat[T] {
	c0, c1 := b.Col(0), b.Col(1)
	return New(
		dot(a.rows[0], c0), dot(a.rows[0], c1),
		dot(a.rows[1], c0), dot(a.rows[1], c1),
	)
}

// MulVec returns the product of m with the column vector v.
func MulVec[T core.Number](m Mat[T], v vec2.Vec[T]) vec2.Vec[T] {
	return vec2.New(dot(m.rows[0], v), dot(m.rows[1], v))
}

// AddScalar adds s to every element of m.
func AddScalar[T core.Number](m Mat[T], s T) Mat[T] {
	return FromRows(vec2.AddScalar(m.rows[0], s), vec2.AddScalar(m.rows[1], s))
}

// SubScalar subtracts s from every element of m.
func SubScalar[T core.Number](m Mat[T], s T) Mat[T] {
	return FromRows(vec2.SubScalar(m.rows[0], s), vec2.SubScalar(m.rows[1], s))
}

// MulScalar multiplies every element of m by s.
func MulScalar[T core.Number](m Mat[T], s T) Mat[T] {
	return FromRows(vec2.MulScalar(m.rows[0], s), vec2.MulScalar(m.rows[1], s))
}

// DivScalar divides every element of m by s.
func DivScalar[T core.Number](m Mat[T], s T) Mat[T] {
	return FromRows(vec2.DivScalar(m.rows[0], s), vec2.DivScalar(m.rows[1], s))
}

// AddAssign sets m to m + n and returns m.
func AddAssign[T core.Number](m *Mat[T], n Mat[T]) *Mat[T] {
	*m = Add(*m, n)
	return m
}

// SubAssign sets m to m - n and returns m.
func SubAssign[T core.Number](m *Mat[T], n Mat[T]) *Mat[T] {
	*m = Sub(*m, n)
	return m
}

// MulAssign sets m to the matrix product m * n and returns m.
func MulAssign[T core.Number](m *Mat[T], n Mat[T]) *Mat[T] {
	*m = Mul(*m, n)
	return m
}

// DivAssign divides m elementwise by n and returns m.
func DivAssign[T core.Number](m *Mat[T], n Mat[T]) *Mat[T] {
	*m = Div(*m, n)
	return m
}

// AddAssignScalar adds s to every element of m and returns m.
func AddAssignScalar[T core.Number](m *Mat[T], s T) *Mat[T] {
	*m = AddScalar(*m, s)
	return m
}

// SubAssignScalar subtracts s from every element of m and returns m.
func SubAssignScalar[T core.Number](m *Mat[T], s T) *Mat[T] {
	*m = SubScalar(*m, s)
	return m
}

// MulAssignScalar multiplies every element of m by s and returns m.
func MulAssignScalar[T core.Number](m *Mat[T], s T) *Mat[T] {
	*m = MulScalar(*m, s)
	return m
}

// DivAssignScalar divides every element of m by s and returns m.
func DivAssignScalar[T core.Number](m *Mat[T], s T) *Mat[T] {
	*m = DivScalar(*m, s)
	return m
}

// Transpose swaps rows and columns.
func Transpose[T core.Number](m Mat[T]) Mat[T] {
	return FromRows(m.Col(0), m.Col(1))
}

// Determinant returns x1*y2 - y1*x2.
func Determinant[T core.Number](m Mat[T]) T {
	return m.rows[0].X*m.rows[1].Y - m.rows[0].Y*m.rows[1].X
}

// Equal reports whether every element of a equals the same element of b.
func Equal[T core.Number](a, b Mat[T]) bool {
	return a == b
}

func dot[T core.Number](a, b vec2.Vec[T]) T {
	return a.X*b.X + a.Y*b.Y
}
