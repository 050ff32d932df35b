// Package scalar provides the scalar math primitives that the vector
// packages lift componentwise.
//
// Functions that work on numeric magnitude are constrained to core.Number,
// the angle conversions to core.Float, and Min/Max to core.Ordered. Passing
// a bool (or any other non-numeric type) is rejected by the compiler.
//
// # Rounding policy
//
// Round adds 0.5 and truncates toward zero, so negative half-ties round
// toward positive infinity (Round(-2.5) == -2). Truncation is done in
// floating point, so values beyond the int64 range and infinities keep
// their magnitude and sign.
//
// Round, Floor and Ceil pass integer inputs through unchanged. For floating
// inputs they use a truncation-based approximation rather than the IEEE
// operations:
//
//	Floor(a) = trunc(a)     for a > 0, trunc(a-1) otherwise
//	Ceil(a)  = trunc(a+1)   for a > 0, trunc(a)   otherwise
//
// The approximation agrees with math.Floor/math.Ceil for every non-integral
// input. It differs on integral floating inputs: Floor(0.0) == -1,
// Floor(-2.0) == -3, Ceil(3.0) == 4.
//
// # Approximations
//
// InvSqrt uses the bit-level initial guess followed by two Newton-Raphson
// steps; relative error is below 5e-6 for both float32 and float64.
// FastSqrt, FastLog and FastExp trade accuracy for speed via algo-approx.
package scalar
