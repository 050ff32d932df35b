package vec3

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/vec1"
	"github.com/chapmankyle/simple-math/smath/vec2"
)

// FromVec1 returns a vector whose X is v.X; Y and Z are zero.
func FromVec1[T core.Scalar](v vec1.Vec[T]) Vec[T] {
	return Vec[T]{X: v.X}
}

// FromVec2 extends v with z.
func FromVec2[T core.Scalar](v vec2.Vec[T], z T) Vec[T] {
	return Vec[T]{v.X, v.Y, z}
}

// XY drops the Z component.
func (v Vec[T]) XY() vec2.Vec[T] {
	return vec2.Vec[T]{X: v.X, Y: v.Y}
}
