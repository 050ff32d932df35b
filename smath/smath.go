// Package smath is a small generic vector and scalar math library.
//
// The library is split into focused packages:
//
//   - core: numeric type constraints, type-category predicates and tolerance helpers
//   - constants: mathematical constants (Pi, Rad, Deg, Sqrt2, ...)
//   - scalar: scalar primitives (Abs, Round, Floor, Ceil, Scale, Sqrt, InvSqrt, ...)
//   - vec1, vec2, vec3, vec4: fixed-length vectors generic over their component type
//   - vec: length-generic componentwise dispatch over the four vector types
//   - mat2: a 2x2 matrix built from vec2 rows
//   - batch: structure-of-arrays float64 vector buffers with block kernels
//
// All vector and matrix types are plain values. Operations never allocate
// and never mutate their operands except through explicit pointer
// arguments (the *Assign, Inc and Dec families).
package smath

import "fmt"

// Library version.
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 2
)

// Version is the semantic version string of the library.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
