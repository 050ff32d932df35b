package scalar

import approx "github.com/meko-christian/algo-approx"

// FastSqrt approximates sqrt(x) for x >= 0.
func FastSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}

// FastLog approximates the natural logarithm of x for x > 0.
func FastLog(x float64) float64 {
	return approx.FastLog(x)
}

// FastExp approximates e^x.
func FastExp(x float64) float64 {
	return approx.FastExp(x)
}
