package scalar

import (
	"github.com/chapmankyle/simple-math/smath/constants"
	"github.com/chapmankyle/simple-math/smath/core"
)

// Radians converts degrees to radians.
func Radians[T core.Float](degrees T) T {
	return degrees * T(constants.Rad)
}

// Degrees converts radians to degrees.
func Degrees[T core.Float](radians T) T {
	return radians * T(constants.Deg)
}
