// Package vec dispatches scalar functions across the components of any of
// the fixed-length vector types in vec1, vec2, vec3 and vec4.
//
// Each length package already provides Map and Zip for its own type. The
// functions here accept any of the four types through the Vector union and
// route to the matching per-length implementation, so generic code can be
// written once for every length:
//
//	func normalizeAngles[V vec.Vector[float64]](v V) V {
//		return vec.Apply(func(a float64) float64 { return math.Mod(a, 360) }, v)
//	}
//
// Apply and Apply2 infer the component type from the function argument.
// Len and Components need it spelled out (vec.Len[float64](v)) because a
// union of distinct struct types gives the compiler nothing to infer it
// from. Types outside the union are rejected at compile time.
package vec

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/vec1"
	"github.com/chapmankyle/simple-math/smath/vec2"
	"github.com/chapmankyle/simple-math/smath/vec3"
	"github.com/chapmankyle/simple-math/smath/vec4"
)

// Vector is satisfied by the vector types of length 1 to 4 with component
// type T.
type Vector[T core.Scalar] interface {
	vec1.Vec[T] | vec2.Vec[T] | vec3.Vec[T] | vec4.Vec[T]
}

// Apply returns the vector obtained by applying f to every component of v.
func Apply[T core.Scalar, V Vector[T]](f func(T) T, v V) V {
	switch x := any(v).(type) {
	case vec1.Vec[T]:
		return any(vec1.Map(x, f)).(V)
	case vec2.Vec[T]:
		return any(vec2.Map(x, f)).(V)
	case vec3.Vec[T]:
		return any(vec3.Map(x, f)).(V)
	case vec4.Vec[T]:
		return any(vec4.Map(x, f)).(V)
	}
	panic("vec: unreachable vector type")
}

// Apply2 returns the vector obtained by applying f to every same-indexed
// pair of components of a and b.
func Apply2[T core.Scalar, V Vector[T]](f func(T, T) T, a, b V) V {
	switch x := any(a).(type) {
	case vec1.Vec[T]:
		return any(vec1.Zip(x, any(b).(vec1.Vec[T]), f)).(V)
	case vec2.Vec[T]:
		return any(vec2.Zip(x, any(b).(vec2.Vec[T]), f)).(V)
	case vec3.Vec[T]:
		return any(vec3.Zip(x, any(b).(vec3.Vec[T]), f)).(V)
	case vec4.Vec[T]:
		return any(vec4.Zip(x, any(b).(vec4.Vec[T]), f)).(V)
	}
	panic("vec: unreachable vector type")
}

// Components returns the components of v in index order.
func Components[T core.Scalar, V Vector[T]](v V) []T {
	switch x := any(v).(type) {
	case vec1.Vec[T]:
		a := x.Array()
		return a[:]
	case vec2.Vec[T]:
		a := x.Array()
		return a[:]
	case vec3.Vec[T]:
		a := x.Array()
		return a[:]
	case vec4.Vec[T]:
		a := x.Array()
		return a[:]
	}
	panic("vec: unreachable vector type")
}

// Len returns the number of components of v.
func Len[T core.Scalar, V Vector[T]](v V) int {
	switch any(v).(type) {
	case vec1.Vec[T]:
		return vec1.Size
	case vec2.Vec[T]:
		return vec2.Size
	case vec3.Vec[T]:
		return vec3.Size
	case vec4.Vec[T]:
		return vec4.Size
	}
	panic("vec: unreachable vector type")
}
