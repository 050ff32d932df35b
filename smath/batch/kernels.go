package batch

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Buffer is implemented by *Vec2s, *Vec3s and *Vec4s. Every component
// slice of a buffer must have the same length; operations reject ragged
// buffers with ErrLengthMismatch.
type Buffer interface {
	Len() int
	lanes() [][]float64
}

func checkBuffers(op string, bufs ...Buffer) error {
	lens := make([]int, len(bufs))
	for i, b := range bufs {
		ls := b.lanes()
		for _, l := range ls[1:] {
			if len(l) != len(ls[0]) {
				return fmt.Errorf("%w: %s on ragged buffer", ErrLengthMismatch, op)
			}
		}
		lens[i] = len(ls[0])
	}
	return checkLen(op, lens...)
}

// Add stores a + b in dst.
func Add[B Buffer](dst, a, b B) error {
	if err := checkBuffers("add", dst, a, b); err != nil {
		return err
	}
	d, x, y := dst.lanes(), a.lanes(), b.lanes()
	for k := range d {
		vecmath.AddBlock(d[k], x[k], y[k])
	}
	return nil
}

// AddInPlace adds src to dst.
func AddInPlace[B Buffer](dst, src B) error {
	if err := checkBuffers("add", dst, src); err != nil {
		return err
	}
	d, s := dst.lanes(), src.lanes()
	for k := range d {
		vecmath.AddBlockInPlace(d[k], s[k])
	}
	return nil
}

// Mul stores the componentwise product a * b in dst.
func Mul[B Buffer](dst, a, b B) error {
	if err := checkBuffers("mul", dst, a, b); err != nil {
		return err
	}
	d, x, y := dst.lanes(), a.lanes(), b.lanes()
	for k := range d {
		vecmath.MulBlock(d[k], x[k], y[k])
	}
	return nil
}

// MulInPlace multiplies dst componentwise by src.
func MulInPlace[B Buffer](dst, src B) error {
	if err := checkBuffers("mul", dst, src); err != nil {
		return err
	}
	d, s := dst.lanes(), src.lanes()
	for k := range d {
		vecmath.MulBlockInPlace(d[k], s[k])
	}
	return nil
}

// Scale stores src * s in dst.
func Scale[B Buffer](dst, src B, s float64) error {
	if err := checkBuffers("scale", dst, src); err != nil {
		return err
	}
	d, x := dst.lanes(), src.lanes()
	for k := range d {
		vecmath.ScaleBlock(d[k], x[k], s)
	}
	return nil
}
