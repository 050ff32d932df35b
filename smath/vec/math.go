package vec

import (
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/scalar"
)

// Sqrt returns the square root of every component of v.
func Sqrt[T core.Number, V Vector[T]](v V) V { return Apply(scalar.Sqrt[T], v) }

// Abs returns the absolute value of every component of v.
func Abs[T core.Number, V Vector[T]](v V) V { return Apply(scalar.Abs[T], v) }

// Floor rounds every component of v down with scalar.Floor.
func Floor[T core.Number, V Vector[T]](v V) V { return Apply(scalar.Floor[T], v) }

// Ceil rounds every component of v up with scalar.Ceil.
func Ceil[T core.Number, V Vector[T]](v V) V { return Apply(scalar.Ceil[T], v) }

// Round rounds every component of v with scalar.Round.
func Round[T core.Number, V Vector[T]](v V) V { return Apply(scalar.Round[T], v) }

// Radians converts every component of v from degrees to radians.
func Radians[T core.Float, V Vector[T]](v V) V { return Apply(scalar.Radians[T], v) }

// Degrees converts every component of v from radians to degrees.
func Degrees[T core.Float, V Vector[T]](v V) V { return Apply(scalar.Degrees[T], v) }

// Min returns the componentwise minimum of a and b.
func Min[T core.Number, V Vector[T]](a, b V) V { return Apply2(scalar.Min[T], a, b) }

// Max returns the componentwise maximum of a and b.
func Max[T core.Number, V Vector[T]](a, b V) V { return Apply2(scalar.Max[T], a, b) }
