package batch

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/chapmankyle/simple-math/smath/vec2"
)

// Vec2s is a buffer of two-component float64 vectors, one slice per
// component.
type Vec2s struct {
	X, Y []float64
}

// NewVec2s returns a buffer of n zero vectors.
func NewVec2s(n int, opts ...Option) *Vec2s {
	cfg := ApplyOptions(opts...)
	return &Vec2s{
		X: newLane(n, cfg),
		Y: newLane(n, cfg),
	}
}

// PackVec2s copies vs into a new buffer.
func PackVec2s(vs []vec2.Vec[float64], opts ...Option) *Vec2s {
	b := NewVec2s(len(vs), opts...)
	for i, v := range vs {
		b.Set(i, v)
	}
	return b
}

// Len returns the number of vectors in b.
func (b *Vec2s) Len() int {
	return len(b.X)
}

// At returns vector i.
func (b *Vec2s) At(i int) vec2.Vec[float64] {
	return vec2.New(b.X[i], b.Y[i])
}

// Set overwrites vector i with v.
func (b *Vec2s) Set(i int, v vec2.Vec[float64]) {
	b.X[i] = v.X
	b.Y[i] = v.Y
}

// Append adds vs to the end of b.
func (b *Vec2s) Append(vs ...vec2.Vec[float64]) {
	for _, v := range vs {
		b.X = append(b.X, v.X)
		b.Y = append(b.Y, v.Y)
	}
}

// Unpack copies the buffer out as a slice of vectors.
func (b *Vec2s) Unpack() []vec2.Vec[float64] {
	out := make([]vec2.Vec[float64], b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Resize sets the length of b to n, reusing capacity when possible. New
// vectors are zero.
func (b *Vec2s) Resize(n int) {
	b.X = resizeLane(b.X, n)
	b.Y = resizeLane(b.Y, n)
}

// Zero sets every vector in b to zero.
func (b *Vec2s) Zero() {
	clear(b.X)
	clear(b.Y)
}

func (b *Vec2s) lanes() [][]float64 {
	return [][]float64{b.X, b.Y}
}

// Lengths stores the Euclidean length of every vector in dst.
func (b *Vec2s) Lengths(dst []float64) error {
	if err := checkLen("lengths", len(dst), len(b.X), len(b.Y)); err != nil {
		return err
	}
	vecmath.Magnitude(dst, b.X, b.Y)
	return nil
}

// LengthsSquared stores the squared Euclidean length of every vector in
// dst.
func (b *Vec2s) LengthsSquared(dst []float64) error {
	if err := checkLen("lengths", len(dst), len(b.X), len(b.Y)); err != nil {
		return err
	}
	vecmath.Power(dst, b.X, b.Y)
	return nil
}
