package vec3

import "github.com/chapmankyle/simple-math/smath/core"

// The operations in this file are only defined for integer components;
// instantiating them with a floating-point or bool Vec does not compile.
// Shifting by a negative count panics, as it does for Go integers.

// Rem returns a % b componentwise.
func Rem[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X % b.X, a.Y % b.Y, a.Z % b.Z}
}

// RemScalar returns v % s.
func RemScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X % s, v.Y % s, v.Z % s}
}

// ScalarRem returns s % v.
func ScalarRem[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s % v.X, s % v.Y, s % v.Z}
}

// And returns a & b componentwise.
func And[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X & b.X, a.Y & b.Y, a.Z & b.Z}
}

// AndScalar returns v & s.
func AndScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X & s, v.Y & s, v.Z & s}
}

// ScalarAnd returns s & v.
func ScalarAnd[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s & v.X, s & v.Y, s & v.Z}
}

// Or returns a | b componentwise.
func Or[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X | b.X, a.Y | b.Y, a.Z | b.Z}
}

// OrScalar returns v | s.
func OrScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X | s, v.Y | s, v.Z | s}
}

// ScalarOr returns s | v.
func ScalarOr[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s | v.X, s | v.Y, s | v.Z}
}

// Xor returns a ^ b componentwise.
func Xor[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X ^ b.X, a.Y ^ b.Y, a.Z ^ b.Z}
}

// XorScalar returns v ^ s.
func XorScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X ^ s, v.Y ^ s, v.Z ^ s}
}

// ScalarXor returns s ^ v.
func ScalarXor[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s ^ v.X, s ^ v.Y, s ^ v.Z}
}

// Shl returns a << b componentwise.
func Shl[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X << b.X, a.Y << b.Y, a.Z << b.Z}
}

// ShlScalar returns v << s.
func ShlScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X << s, v.Y << s, v.Z << s}
}

// ScalarShl returns s << v.
func ScalarShl[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s << v.X, s << v.Y, s << v.Z}
}

// Shr returns a >> b componentwise.
func Shr[T core.Integer](a, b Vec[T]) Vec[T] {
	return Vec[T]{a.X >> b.X, a.Y >> b.Y, a.Z >> b.Z}
}

// ShrScalar returns v >> s.
func ShrScalar[T core.Integer](v Vec[T], s T) Vec[T] {
	return Vec[T]{v.X >> s, v.Y >> s, v.Z >> s}
}

// ScalarShr returns s >> v.
func ScalarShr[T core.Integer](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s >> v.X, s >> v.Y, s >> v.Z}
}

// RemAssign performs v %= u and returns v.
func RemAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X %= u.X
	v.Y %= u.Y
	v.Z %= u.Z
	return v
}

// RemAssignScalar performs v %= s and returns v.
func RemAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X %= s
	v.Y %= s
	v.Z %= s
	return v
}

// AndAssign performs v &= u and returns v.
func AndAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X &= u.X
	v.Y &= u.Y
	v.Z &= u.Z
	return v
}

// AndAssignScalar performs v &= s and returns v.
func AndAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X &= s
	v.Y &= s
	v.Z &= s
	return v
}

// OrAssign performs v |= u and returns v.
func OrAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X |= u.X
	v.Y |= u.Y
	v.Z |= u.Z
	return v
}

// OrAssignScalar performs v |= s and returns v.
func OrAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X |= s
	v.Y |= s
	v.Z |= s
	return v
}

// XorAssign performs v ^= u and returns v.
func XorAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X ^= u.X
	v.Y ^= u.Y
	v.Z ^= u.Z
	return v
}

// XorAssignScalar performs v ^= s and returns v.
func XorAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X ^= s
	v.Y ^= s
	v.Z ^= s
	return v
}

// ShlAssign performs v <<= u and returns v.
func ShlAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X <<= u.X
	v.Y <<= u.Y
	v.Z <<= u.Z
	return v
}

// ShlAssignScalar performs v <<= s and returns v.
func ShlAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X <<= s
	v.Y <<= s
	v.Z <<= s
	return v
}

// ShrAssign performs v >>= u and returns v.
func ShrAssign[T core.Integer](v *Vec[T], u Vec[T]) *Vec[T] {
	v.X >>= u.X
	v.Y >>= u.Y
	v.Z >>= u.Z
	return v
}

// ShrAssignScalar performs v >>= s and returns v.
func ShrAssignScalar[T core.Integer](v *Vec[T], s T) *Vec[T] {
	v.X >>= s
	v.Y >>= s
	v.Z >>= s
	return v
}

// Not returns the bitwise complement of every component.
func Not[T core.Integer](v Vec[T]) Vec[T] {
	return Vec[T]{^v.X, ^v.Y, ^v.Z}
}
