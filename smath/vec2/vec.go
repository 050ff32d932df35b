package vec2

import (
	"fmt"

	"github.com/chapmankyle/simple-math/smath/core"
)

// Size is the number of components of a Vec.
const Size = 2

// Vec is a two-component vector. The zero value has every component
// set to the zero value of T.
type Vec[T core.Scalar] struct {
	X T
	Y T
}

// New returns a vector with the given components.
func New[T core.Scalar](x, y T) Vec[T] {
	return Vec[T]{x, y}
}

// Splat returns a vector with every component set to s.
func Splat[T core.Scalar](s T) Vec[T] {
	return Vec[T]{s, s}
}

// Cast returns a vector whose components are converted to T from
// arguments of possibly different numeric types.
func Cast[T, A, B core.Number](x A, y B) Vec[T] {
	return Vec[T]{T(x), T(y)}
}

// Convert returns v with every component converted to T.
func Convert[T, A core.Number](v Vec[A]) Vec[T] {
	return Vec[T]{T(v.X), T(v.Y)}
}

// Len returns the number of components.
func (v Vec[T]) Len() int {
	return Size
}

// At returns the component at index i. It panics if i is not in [0, 2).
func (v Vec[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(outOfRange(i))
}

// Ptr returns a pointer to the component at index i. It panics if i is
// not in [0, 2).
func (v *Vec[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	}
	panic(outOfRange(i))
}

// Set stores value at index i and returns v.
func (v *Vec[T]) Set(i int, value T) *Vec[T] {
	*v.Ptr(i) = value
	return v
}

// Array returns the components in index order.
func (v Vec[T]) Array() [Size]T {
	return [Size]T{v.X, v.Y}
}

// String formats v as vec2(x, y).
func (v Vec[T]) String() string {
	return fmt.Sprintf("vec2(%v, %v)", v.X, v.Y)
}

func outOfRange(i int) string {
	return fmt.Sprintf("vec2: index %d out of range [0, %d)", i, Size)
}
