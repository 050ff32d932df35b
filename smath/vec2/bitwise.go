package vec2

import "github.com/chapmankyle/simple-math/smath/core"

// The operations in this file are only defined for integer components;
// instantiating them with a floating-point or bool Vec does not compile.
// Shifting by a negative count panics, as it does for Go integers.

// Rem returns a % b componentwise.
func Rem[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X % b.X, a.Y % b.Y}
}

// RemScalar returns v % s.
func RemScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X % s, v.Y % s}
}

// ScalarRem returns s % v.
func ScalarRem[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s % v.X, s % v.Y}
}

// And returns a & b componentwise.
func And[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X & b.X, a.Y & b.Y}
}

// AndScalar returns v & s.
func AndScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X & s, v.Y & s}
}

// ScalarAnd returns s & v.
func ScalarAnd[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s & v.X, s & v.Y}
}

// Or returns a | b componentwise.
func Or[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X | b.X, a.Y | b.Y}
}

// OrScalar returns v | s.
func OrScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X | s, v.Y | s}
}

// ScalarOr returns s | v.
func ScalarOr[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s | v.X, s | v.Y}
}

// Xor returns a ^ b componentwise.
func Xor[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X ^ b.X, a.Y ^ b.Y}
}

// XorScalar returns v ^ s.
func XorScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X ^ s, v.Y ^ s}
}

// ScalarXor returns s ^ v.
func ScalarXor[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s ^ v.X, s ^ v.Y}
}

// Shl returns a << b componentwise.
func Shl[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X << b.X, a.Y << b.Y}
}

// ShlScalar returns v << s.
func ShlScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X << s, v.Y << s}
}

// ScalarShl returns s << v.
func ScalarShl[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s << v.X, s << v.Y}
}

// Shr returns a >> b componentwise.
func Shr[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X >> b.X, a.Y >> b.Y}
}

// ShrScalar returns v >> s.
func ShrScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X >> s, v.Y >> s}
}

// ScalarShr returns s >> v.
func ScalarShr[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s >> v.X, s >> v.Y}
}

// RemAssign performs v %= u and returns v.
func RemAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X %= u.X
	v.Y %= u.Y
	return v
}

// RemAssignScalar performs v %= s and returns v.
func RemAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X %= s
	v.Y %= s
	return v
}

// AndAssign performs v &= u and returns v.
func AndAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X &= u.X
	v.Y &= u.Y
	return v
}

// AndAssignScalar performs v &= s and returns v.
func AndAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X &= s
	v.Y &= s
	return v
}

// OrAssign performs v |= u and returns v.
func OrAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X |= u.X
	v.Y |= u.Y
	return v
}

// OrAssignScalar performs v |= s and returns v.
func OrAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X |= s
	v.Y |= s
	return v
}

// XorAssign performs v ^= u and returns v.
func XorAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X ^= u.X
	v.Y ^= u.Y
	return v
}

// XorAssignScalar performs v ^= s and returns v.
func XorAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X ^= s
	v.Y ^= s
	return v
}

// ShlAssign performs v <<= u and returns v.
func ShlAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X <<= u.X
	v.Y <<= u.Y
	return v
}

// ShlAssignScalar performs v <<= s and returns v.
func ShlAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X <<= s
	v.Y <<= s
	return v
}

// ShrAssign performs v >>= u and returns v.
func ShrAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X >>= u.X
	v.Y >>= u.Y
	return v
}

// ShrAssignScalar performs v >>= s and returns v.
func ShrAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X >>= s
	v.Y >>= s
	return v
}

// Not returns the bitwise complement of every component.
func Not[T core.Integer](v Vec[T]) Vec[T] {
	return Vec[T]{^v.X, ^v.Y}
}
