package vec2

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/vec1"
)

// FromVec1 returns a vector whose X is v.X and whose Y is zero.
func FromVec1[T core.Scalar](v vec1.Vec[T]) Vec[T] {
	return Vec[T]{X: v.X}
}

// X1 returns the X component as a one-component vector.
func (v Vec[T]) X1() vec1.Vec[T] {
	return vec1.Vec[T]{X: v.X}
}
