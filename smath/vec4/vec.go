package vec4

import (
	"fmt"

	"github.com/chapmankyle/simple-math/smath/core"
)

// Size is the number of components of a Vec.
const Size = 4

// Vec is a four-component vector. The zero value has every component
// set to the zero value of T.
type Vec[T core.Scalar] struct {
	X T
	Y T
	Z T
	W T
}

// New returns a vector with the given components.
func New[T core.Scalar](x, y, z, w T) Vec[T] {
	return Vec[T]{x, y, z, w}
}

// Splat returns a vector with every component set to s.
func Splat[T core.Scalar](s T) Vec[T] {
	return Vec[T]{s, s, s, s}
}

// Cast returns a vector whose components are converted to T from
// arguments of possibly different numeric types.
func Cast[T, A, B, C, D core.Number](x A, y B, z C, w D) Vec[T] {
	return Vec[T]{T(x), T(y), T(z), T(w)}
}

// Convert returns v with every component converted to T.
func Convert[T, A core.Number](v Vec[A]) Vec[T] {
	return Vec[T]{T(v.X), T(v.Y), T(v.Z), T(v.W)}
}

// Len returns the number of components.
func (v Vec[T]) Len() int {
	return Size
}

// At returns the component at index i. It panics if i is not in [0, 4).
func (v Vec[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(outOfRange(i))
}

// Ptr returns a pointer to the component at index i. It panics if i is
// not in [0, 4).
func (v *Vec[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	case 3:
		return &v.W
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
	return [Size]T{v.X, v.Y, v.Z, v.W}
}

// String formats v as vec4(x, y, z, w).
func (v Vec[T]) String() string {
	return fmt.Sprintf("vec4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

func outOfRange(i int) string {
	return fmt.Sprintf("vec4: index %d out of range [0, %d)", i, Size)
}
