package testutil

import "math/rand"

// DeterministicValues returns n uniformly distributed values in
// [-amplitude, amplitude) drawn from a fixed seed.
func DeterministicValues(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts returns n integers in [-limit, limit] drawn from a
// fixed seed. limit must be positive.
func DeterministicInts(seed int64, limit, n int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(2*limit+1) - limit
	}
	return out
}

// Ramp returns n values start, start+step, start+2*step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
