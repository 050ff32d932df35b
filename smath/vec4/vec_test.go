package vec4

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chapmankyle/simple-math/smath/vec2"
	"github.com/chapmankyle/simple-math/smath/vec3"
)

func TestAccess(t *testing.T) {
	d := New(1.2, 2.3, 3.4, 4.5)
	require.Equal(t, [Size]float64{1.2, 2.3, 3.4, 4.5}, d.Array())

	i := New(1, 2, 3, 4)
	for idx, want := range []int{1, 2, 3, 4} {
		require.Equal(t, want, i.At(idx))
	}
	require.Equal(t, 4, i.Len())

	i.Set(3, 40).Set(0, 10)
	require.Equal(t, New(10, 2, 3, 40), i)

	*i.Ptr(2) = 30
	require.Equal(t, 30, i.Z)

	require.PanicsWithValue(t, "vec4: index -1 out of range [0, 4)", func() { i.At(-1) })
	require.PanicsWithValue(t, "vec4: index 4 out of range [0, 4)", func() { i.Set(4, 0) })
}

func TestWidenAndTruncate(t *testing.T) {
	v3 := vec3.New(1, 2, 3)
	require.Equal(t, New(1, 2, 3, 4), FromVec3(v3, 4))
	require.Equal(t, New(1, 2, 7, 8), FromVec2(vec2.New(1, 2), 7, 8))
	require.Equal(t, v3, FromVec3(v3, 4).XYZ())
	require.Equal(t, vec2.New(1, 2), New(1, 2, 3, 4).XY())
}

func TestArithmetic(t *testing.T) {
	require.True(t, ApproxEqual(
		Add(New[float32](1.5, 2.6, 1.2, 0.5), New[float32](5, 3, 1.2, 0.25)),
		New[float32](6.5, 5.6, 2.4, 0.75), 1e-6))

	require.Equal(t, New(2, 4, 6, 8), MulScalar(New(1, 2, 3, 4), 2))
	require.Equal(t, New(6, 3, 2, 1), ScalarDiv(12, New(2, 4, 6, 12)))
	require.Equal(t, New(-1, 2, -3, 4), Neg(New(1, -2, 3, -4)))

	var u Vec[uint8]
	require.Equal(t, New[uint8](255, 255, 255, 255), Sub(u, Splat[uint8](1)))
}

func TestCompound(t *testing.T) {
	v := New(1.0, 2.0, 3.0, 4.0)
	p := DivAssignScalar(AddAssign(&v, Splat(1.0)), 2)
	require.Same(t, &v, p)
	require.Equal(t, New(1.0, 1.5, 2.0, 2.5), v)

	n := New(0b1111, 0b1010, 0b0101, 0)
	AndAssignScalar(XorAssign(&n, Splat(0b0011)), 0b1110)
	require.Equal(t, New(0b1100, 0b1000, 0b0110, 0b0010), n)
}

func TestEquality(t *testing.T) {
	a := New(1, 2, 3, 4)
	require.True(t, Equal(a, a))
	require.False(t, Equal(a, New(1, 2, 3, 5)))
	require.True(t, NotEqual(a, New(0, 2, 3, 4)))
	require.True(t, a == New(1, 2, 3, 4))
}

func TestLogical(t *testing.T) {
	m := New(true, false, true, false)
	require.Equal(t, New(true, false, false, false), LogicalAnd(m, New(true, true, false, false)))
	require.Equal(t, New(true, true, true, false), LogicalOr(m, New(false, true, false, false)))
	require.False(t, All(m))
	require.False(t, Any(Vec[bool]{}))
}

func TestFuncs(t *testing.T) {
	require.Equal(t, New(1, 5, 3, 8), Max(New(1, 2, 3, 4), New(0, 5, 1, 8)))
	require.Equal(t, New(0, 2, 1, 4), Min(New(1, 2, 3, 4), New(0, 5, 1, 8)))
	require.Equal(t, New(0, 2, 3, 3), Clamp(New(-1, 2, 3, 9), 0, 3))
	require.Equal(t, New(2.0, 1.0, 0.0, 3.0), Abs(New(-2.0, 1.0, 0.0, -3.0)))
	require.Equal(t, New(1.0, 2.0, 0.0, 3.0), Round(New(0.5, 1.6, -1.2, 2.5)))
	require.Equal(t, "vec4(1, 2, 3, 4)", New(1, 2, 3, 4).String())
}
