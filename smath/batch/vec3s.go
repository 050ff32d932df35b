package batch

import "github.com/chapmankyle/simple-math/smath/vec3"

// Vec3s is a buffer of three-component float64 vectors, one slice per
// component.
type Vec3s struct {
	X, Y, Z []float64
}

// NewVec3s returns a buffer of n zero vectors.
func NewVec3s(n int, opts ...Option) *Vec3s {
	cfg := ApplyOptions(opts...)
	return &Vec3s{
		X: newLane(n, cfg),
		Y: newLane(n, cfg),
		Z: newLane(n, cfg),
	}
}

// PackVec3s copies vs into a new buffer.
func PackVec3s(vs []vec3.Vec[float64], opts ...Option) *Vec3s {
	b := NewVec3s(len(vs), opts...)
	for i, v := range vs {
		b.Set(i, v)
	}
	return b
}

// Len returns the number of vectors in b.
func (b *Vec3s) Len() int {
	return len(b.X)
}

// At returns vector i.
func (b *Vec3s) At(i int) vec3.Vec[float64] {
	return vec3.New(b.X[i], b.Y[i], b.Z[i])
}

// Set overwrites vector i with v.
func (b *Vec3s) Set(i int, v vec3.Vec[float64]) {
	b.X[i] = v.X
	b.Y[i] = v.Y
	b.Z[i] = v.Z
}

// Append adds vs to the end of b.
func (b *Vec3s) Append(vs ...vec3.Vec[float64]) {
	for _, v := range vs {
		b.X = append(b.X, v.X)
		b.Y = append(b.Y, v.Y)
		b.Z = append(b.Z, v.Z)
	}
}

// Unpack copies the buffer out as a slice of vectors.
func (b *Vec3s) Unpack() []vec3.Vec[float64] {
	out := make([]vec3.Vec[float64], b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Resize sets the length of b to n, reusing capacity when possible. New
// vectors are zero.
func (b *Vec3s) Resize(n int) {
	b.X = resizeLane(b.X, n)
	b.Y = resizeLane(b.Y, n)
	b.Z = resizeLane(b.Z, n)
}

// Zero sets every vector in b to zero.
func (b *Vec3s) Zero() {
	clear(b.X)
	clear(b.Y)
	clear(b.Z)
}

func (b *Vec3s) lanes() [][]float64 {
	return [][]float64{b.X, b.Y, b.Z}
}
