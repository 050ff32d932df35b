package core

import "golang.org/x/exp/constraints"

// Integer is a constraint for integer-like component types.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for floating-point-like component types.
type Float interface {
	constraints.Float
}

// Number is a constraint for every type that supports arithmetic.
type Number interface {
	Integer | Float
}

// Scalar is a constraint for every type that may be stored in a vector
// component. Booleans are allowed for logical vectors only.
type Scalar interface {
	Number | ~bool
}

// Ordered is a constraint for types comparable with <.
type Ordered interface {
	constraints.Ordered
}

// MinLength and MaxLength bound the number of components of a vector.
const (
	MinLength = 1
	MaxLength = 4
)

// ValidLength reports whether l is a supported vector length.
func ValidLength(l int) bool {
	return l >= MinLength && l <= MaxLength
}
