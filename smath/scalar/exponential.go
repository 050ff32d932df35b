package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/chapmankyle/simple-math/smath/constants"
	"github.com/chapmankyle/simple-math/smath/core"
)

// Magic constants for the initial InvSqrt guess.
const (
	invSqrtMagic32 uint32 = 0x5f375a86
	invSqrtMagic64 uint64 = 0x5fe6eb50c7b537a9
)

var sqrt2 float64 = constants.Sqrt2

// Sqrt returns the square root of a. Sqrt(2) returns constants.Sqrt2
// without computing it. Integer results are truncated.
func Sqrt[T core.Number](a T) T {
	if a == 2 {
		return T(sqrt2)
	}
	if v, ok := any(a).(float32); ok {
		return any(math32.Sqrt(v)).(T)
	}
	return T(math.Sqrt(float64(a)))
}

// Log returns the natural logarithm of a. Integer results are truncated.
func Log[T core.Number](a T) T {
	if v, ok := any(a).(float32); ok {
		return any(math32.Log(v)).(T)
	}
	return T(math.Log(float64(a)))
}

// InvSqrt32 approximates 1/sqrt(a) for single precision.
func InvSqrt32(a float32) float32 {
	half := a * 0.5

	i := math.Float32bits(a)
	i = invSqrtMagic32 - i>>1
	y := math.Float32frombits(i)

	y *= 1.5 - half*y*y
	y *= 1.5 - half*y*y
	return y
}

// InvSqrt64 approximates 1/sqrt(a) for double precision.
func InvSqrt64(a float64) float64 {
	half := a * 0.5

	i := math.Float64bits(a)
	i = invSqrtMagic64 - i>>1
	y := math.Float64frombits(i)

	y *= 1.5 - half*y*y
	y *= 1.5 - half*y*y
	return y
}

// InvSqrt approximates 1/sqrt(a), picking InvSqrt32 or InvSqrt64 by the
// precision of T.
func InvSqrt[T core.Float](a T) T {
	if unsafe.Sizeof(a) == 4 {
		return T(InvSqrt32(float32(a)))
	}
	return T(InvSqrt64(float64(a)))
}
