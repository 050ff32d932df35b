package vec2

import "github.com/chapmankyle/simple-math/smath/core"

// Equal reports whether every component of a equals the matching component
// of b. It is identical to a == b and exists so that equality can be passed
// as a function value.
func Equal[T core.Scalar](a, b Vec[T]) bool {
	return a == b
}

// NotEqual reports whether any component differs.
func NotEqual[T core.Scalar](a, b Vec[T]) bool {
	return a != b
}

// ApproxEqual reports whether every component pair is equal within eps
// (see core.NearlyEqual).
func ApproxEqual[T core.Float](a, b Vec[T], eps float64) bool {
	return core.NearlyEqual(float64(a.X), float64(b.X), eps) &&
		core.NearlyEqual(float64(a.Y), float64(b.Y), eps)
}
