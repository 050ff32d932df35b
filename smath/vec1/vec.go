package vec1

import (
	"fmt"

	"github.com/chapmankyle/simple-math/smath/core"
)

// Size is the number of components of a Vec.
const Size = 1

// Vec is a one-component vector. The zero value has every component
// set to the zero value of T.
type Vec[T core.Scalar] struct {
	X T
}

// New returns a vector with the given components.
func New[T core.Scalar](x T) Vec[T] {
	return Vec[T]{x}
}

// Splat returns a vector with its component set to s.
func Splat[T core.Scalar](s T) Vec[T] {
	return Vec[T]{s}
}

// Cast returns a vector whose components are converted to T from
// arguments of possibly different numeric types.
func Cast[T, A core.Number](x A) Vec[T] {
	return Vec[T]{T(x)}
}

// Convert returns v with every component converted to T.
func Convert[T, A core.Number](v Vec[A]) Vec[T] {
	return Vec[T]{T(v.X)}
}

// Len returns the number of components.
func (v Vec[T]) Len() int {
	return Size
}

// At returns the component at index i. It panics if i is not in [0, 1).
func (v Vec[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	}
	panic(outOfRange(i))
}

// Ptr returns a pointer to the component at index i. It panics if i is
// not in [0, 1).
func (v *Vec[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
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
	return [Size]T{v.X}
}

// String formats v as vec1(x).
func (v Vec[T]) String() string {
	return fmt.Sprintf("vec1(%v)", v.X)
}

func outOfRange(i int) string {
	return fmt.Sprintf("vec1: index %d out of range [0, %d)", i, Size)
}
