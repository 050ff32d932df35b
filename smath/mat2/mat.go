// Package mat2 provides a 2x2 matrix stored as two vec2 rows.
//
// Element (r, c) is row r, column c. New takes its arguments in row-major
// order, so New(x1, y1, x2, y2) has rows (x1, y1) and (x2, y2).
package mat2

import (
	"fmt"

	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/vec2"
)

// Size is the number of rows, and of columns, of a Mat.
const Size = 2

// Mat is a 2x2 matrix. The zero value is the zero matrix.
type Mat[T core.Number] struct {
	rows [Size]vec2.Vec[T]
}

// New returns the matrix with rows (x1, y1) and (x2, y2).
func New[T core.Number](x1, y1, x2, y2 T) Mat[T] {
	return Mat[T]{[Size]vec2.Vec[T]{{X: x1, Y: y1}, {X: x2, Y: y2}}}
}

// Splat returns a matrix with every element set to s.
func Splat[T core.Number](s T) Mat[T] {
	return New(s, s, s, s)
}

// FromRows returns the matrix with the given rows.
func FromRows[T core.Number](r0, r1 vec2.Vec[T]) Mat[T] {
	return Mat[T]{[Size]vec2.Vec[T]{r0, r1}}
}

// Identity returns the multiplicative identity.
func Identity[T core.Number]() Mat[T] {
	return New[T](1, 0, 0, 1)
}

// Convert returns m with every element converted to T.
func Convert[T, A core.Number](m Mat[A]) Mat[T] {
	return FromRows(vec2.Convert[T](m.rows[0]), vec2.Convert[T](m.rows[1]))
}

// Len returns the number of rows.
func (m Mat[T]) Len() int {
	return Size
}

// Row returns row i. It panics if i is not in [0, 2).
func (m Mat[T]) Row(i int) vec2.Vec[T] {
	checkIndex("row", i)
	return m.rows[i]
}

// Col returns column j. It panics if j is not in [0, 2).
func (m Mat[T]) Col(j int) vec2.Vec[T] {
	checkIndex("column", j)
	return vec2.New(m.rows[0].At(j), m.rows[1].At(j))
}

// At returns the element at row r, column c.
func (m Mat[T]) At(r, c int) T {
	checkIndex("row", r)
	checkIndex("column", c)
	return m.rows[r].At(c)
}

// Set stores value at row r, column c and returns m.
func (m *Mat[T]) Set(r, c int, value T) *Mat[T] {
	checkIndex("row", r)
	checkIndex("column", c)
	m.rows[r].Set(c, value)
	return m
}

// SetRow replaces row i and returns m.
func (m *Mat[T]) SetRow(i int, row vec2.Vec[T]) *Mat[T] {
	checkIndex("row", i)
	m.rows[i] = row
	return m
}

// String formats m as mat2x2((x1, y1), (x2, y2)).
func (m Mat[T]) String() string {
	r0, r1 := m.rows[0], m.rows[1]
	return fmt.Sprintf("mat2x2((%v, %v), (%v, %v))", r0.X, r0.Y, r1.X, r1.Y)
}

func checkIndex(what string, i int) {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("mat2: %s index %d out of range [0, %d)", what, i, Size))
	}
}
