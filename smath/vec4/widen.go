package vec4

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/vec1"
	"github.com/chapmankyle/simple-math/smath/vec2"
	"github.com/chapmankyle/simple-math/smath/vec3"
)

// FromVec1 returns a vector whose X is v.X; the other components are zero.
func FromVec1[T core.Scalar](v vec1.Vec[T]) Vec[T] {
	return Vec[T]{X: v.X}
}

// FromVec2 extends v with z and w.
func FromVec2[T core.Scalar](v vec2.Vec[T], z, w T) Vec[T] {
	return Vec[T]{v.X, v.Y, z, w}
}

// FromVec3 extends v with w.
func FromVec3[T core.Scalar](v vec3.Vec[T], w T) Vec[T] {
	return Vec[T]{v.X, v.Y, v.Z, w}
}

// XY returns the first two components.
func (v Vec[T]) XY() vec2.Vec[T] {
	return vec2.Vec[T]{X: v.X, Y: v.Y}
}

// XYZ drops the W component.
func (v Vec[T]) XYZ() vec3.Vec[T] {
	return vec3.Vec[T]{X: v.X, Y: v.Y, Z: v.Z}
}
