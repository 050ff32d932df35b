// Package vec2 provides a two-component vector generic over its component
// type.
//
// Vec[T] is a plain struct with exported X and Y fields, so it is copied on
// assignment and can be compared with ==. Component types are restricted by
// core.Scalar (integers, floats and bool) and every operation narrows that
// further:
//
//   - arithmetic (Add, Sub, Mul, Div, Neg, Inc, Dec, ...) needs core.Number
//   - remainder and bit operations (Rem, And, Or, Xor, Shl, Shr, Not) need core.Integer
//   - angle conversions and InvSqrt need core.Float
//   - LogicalAnd, LogicalOr, LogicalNot, All and Any exist only for Vec[bool]
//
// Binary operations come in three shapes:
//
//	vec2.Add(a, b)         // vector + vector
//	vec2.AddScalar(v, s)   // vector + scalar
//	vec2.ScalarAdd(s, v)   // scalar + vector
//
// and two in-place forms that return their receiver for chaining:
//
//	vec2.AddAssign(&v, u)
//	vec2.AddAssignScalar(&v, s)
//
// Go has no implicit numeric conversions, so operands of a different
// component type are converted explicitly with Convert or Cast first:
//
//	v := vec2.New(1.5, 2.0)
//	vec2.AddAssign(&v, vec2.Convert[float64](vec2.New(1, 2)))
//
// Map and Zip apply a scalar function to every component and are how the
// componentwise math (Sqrt, Abs, Floor, Ceil, Round, Log, Radians, Degrees)
// is defined.
package vec2
