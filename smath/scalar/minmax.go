package scalar

import "github.com/chapmankyle/simple-math/smath/core"

// Max returns the larger of a and b. Ties return a.
func Max[T core.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Max3 returns the largest of a, b and c.
func Max3[T core.Ordered](a, b, c T) T {
	return Max(a, Max(b, c))
}

// Min returns the smaller of a and b. Ties return b.
func Min[T core.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Min3 returns the smallest of a, b and c.
func Min3[T core.Ordered](a, b, c T) T {
	return Min(a, Min(b, c))
}

// Clamp limits v to the inclusive range [lo, hi]. Inverted bounds are swapped.
func Clamp[T core.Ordered](v, lo, hi T) T {
	return core.Clamp(v, lo, hi)
}
