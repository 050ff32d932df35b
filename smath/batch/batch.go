// Package batch stores many float64 vectors in structure-of-arrays form
// and runs componentwise arithmetic over whole buffers with the
// algo-vecmath block kernels.
//
// A Vec3s of length n holds three slices X, Y and Z of length n; element i
// is the vector (X[i], Y[i], Z[i]). Results match the per-vector
// operations in vec2, vec3 and vec4.
//
// Buffers passed to the same call must have equal lengths; otherwise the
// call returns an error wrapping ErrLengthMismatch and leaves dst
// untouched. dst may alias a source buffer.
package batch

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// ErrLengthMismatch is returned when buffers of different lengths are
// combined.
var ErrLengthMismatch = errors.New("batch: length mismatch")

func checkLen(op string, lens ...int) error {
	for _, n := range lens[1:] {
		if n != lens[0] {
			return fmt.Errorf("%w: %s lengths %v", ErrLengthMismatch, op, lens)
		}
	}
	return nil
}

// KernelLevel reports the SIMD level the block kernels can use on this
// machine.
func KernelLevel() cpu.SIMDLevel {
	return levelOf(cpu.DetectFeatures())
}

func levelOf(f cpu.Features) cpu.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return cpu.SIMDNone
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasSSE2:
		return cpu.SIMDSSE2
	case f.HasNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}
