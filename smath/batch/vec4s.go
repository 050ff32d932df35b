package batch

import "github.com/chapmankyle/simple-math/smath/vec4"

// Vec4s is a buffer of four-component float64 vectors, one slice per
// component.
type Vec4s struct {
	X, Y, Z, W []float64
}

// NewVec4s returns a buffer of n zero vectors.
func NewVec4s(n int, opts ...Option) *Vec4s {
	cfg := ApplyOptions(opts...)
	return &Vec4s{
		X: newLane(n, cfg),
		Y: newLane(n, cfg),
		Z: newLane(n, cfg),
		W: newLane(n, cfg),
	}
}

// PackVec4s copies vs into a new buffer.
func PackVec4s(vs []vec4.Vec[float64], opts ...Option) *Vec4s {
	b := NewVec4s(len(vs), opts...)
	for i, v := range vs {
		b.Set(i, v)
	}
	return b
}

// Len returns the number of vectors in b.
func (b *Vec4s) Len() int {
	return len(b.X)
}

// At returns vector i.
func (b *Vec4s) At(i int) vec4.Vec[float64] {
	return vec4.New(b.X[i], b.Y[i], b.Z[i], b.W[i])
}

// Set overwrites vector i with v.
func (b *Vec4s) Set(i int, v vec4.Vec[float64]) {
	b.X[i] = v.X
	b.Y[i] = v.Y
	b.Z[i] = v.Z
	b.W[i] = v.W
}

// Append adds vs to the end of b.
func (b *Vec4s) Append(vs ...vec4.Vec[float64]) {
	for _, v := range vs {
		b.X = append(b.X, v.X)
		b.Y = append(b.Y, v.Y)
		b.Z = append(b.Z, v.Z)
		b.W = append(b.W, v.W)
	}
}

// Unpack copies the buffer out as a slice of vectors.
func (b *Vec4s) Unpack() []vec4.Vec[float64] {
	out := make([]vec4.Vec[float64], b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Resize sets the length of b to n, reusing capacity when possible. New
// vectors are zero.
func (b *Vec4s) Resize(n int) {
	b.X = resizeLane(b.X, n)
	b.Y = resizeLane(b.Y, n)
	b.Z = resizeLane(b.Z, n)
	b.W = resizeLane(b.W, n)
}

// Zero sets every vector in b to zero.
func (b *Vec4s) Zero() {
	clear(b.X)
	clear(b.Y)
	clear(b.Z)
	clear(b.W)
}

func (b *Vec4s) lanes() [][]float64 {
	return [][]float64{b.X, b.Y, b.Z, b.W}
}
