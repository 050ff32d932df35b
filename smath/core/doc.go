// Package core holds the numeric type constraints, type-category
// predicates and tolerance helpers shared by every smath package.
//
// # Type categories
//
// Every Go scalar type falls into exactly one category:
//
//   - integer-like: int, int8..int64, uint..uint64, uintptr (and named types over them)
//   - floating-point-like: float32, float64 (and named types over them)
//   - neither: bool, string and every other kind
//
// Go has no distinct character type; byte and rune are integer-like.
//
// The categories are enforced twice. At compile time through the Integer,
// Float, Number and Scalar constraints, which gate the generic functions in
// the scalar and vector packages. At run time through IsInteger, IsFloating
// and CategoryOf, which let a single generic body branch on the category of
// its type parameter (for example Floor passing integers through unchanged).
package core
