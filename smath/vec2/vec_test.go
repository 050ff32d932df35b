package vec2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chapmankyle/simple-math/smath/scalar"
	"github.com/chapmankyle/simple-math/smath/vec1"
)

func TestConstructionAndAccess(t *testing.T) {
	v := New(1.2, 2.3)
	require.Equal(t, 1.2, v.X)
	require.Equal(t, 2.3, v.Y)
	require.Equal(t, 1.2, v.At(0))
	require.Equal(t, 2.3, v.At(1))
	require.Equal(t, [Size]float64{1.2, 2.3}, v.Array())

	f := New[float32](1.2, 2.3)
	require.Equal(t, float32(1.2), f.At(0))
	require.Equal(t, float32(2.3), f.At(1))

	i := New(1, 2)
	require.Equal(t, 1, i.At(0))
	require.Equal(t, 2, i.At(1))

	require.Equal(t, 2, Vec[float32]{}.Len())
	require.Equal(t, 2, Vec[float64]{}.Len())
	require.Equal(t, 2, Vec[int]{}.Len())
}

func TestZeroAndSplat(t *testing.T) {
	require.Equal(t, New(0, 0), Vec[int]{})
	require.Equal(t, New(7.5, 7.5), Splat(7.5))
	require.Equal(t, New(true, true), Splat(true))
}

func TestCastAndConvert(t *testing.T) {
	require.Equal(t, New(1.0, 2.5), Cast[float64](1, float32(2.5)))
	require.Equal(t, New(3, -1), Convert[int](New(3.9, -1.2)))
	require.Equal(t, New[float32](1, 2), Convert[float32](New(1, 2)))
	require.Equal(t, New(1, 0), FromVec1(vec1.New(1)))
	require.Equal(t, vec1.New(4), New(4, 5).X1())
}

func TestSetAndPtr(t *testing.T) {
	var v Vec[int]
	v.Set(0, 4).Set(1, 9)
	require.Equal(t, New(4, 9), v)

	*v.Ptr(1) = 11
	require.Equal(t, 11, v.Y)
}

func TestIndexOutOfRangePanics(t *testing.T) {
	v := New(1, 2)
	require.PanicsWithValue(t, "vec2: index 2 out of range [0, 2)", func() { v.At(2) })
	require.PanicsWithValue(t, "vec2: index -1 out of range [0, 2)", func() { v.Set(-1, 0) })
}

func TestArithmeticScenarios(t *testing.T) {
	sum := Add(New[float32](1.5, 2.6), New[float32](5, 3))
	require.True(t, ApproxEqual(sum, New[float32](6.5, 5.6), 1e-6))

	require.True(t, ApproxEqual(AddScalar(New[float32](1.5, 2.6), 2), New[float32](3.5, 4.6), 1e-6))
	require.True(t, ApproxEqual(ScalarAdd(2, New[float32](1.5, 2.6)), New[float32](3.5, 4.6), 1e-6))

	require.True(t, ApproxEqual(Add(New(1.5, 2.6), New(5.0, 3.0)), New(6.5, 5.6), 1e-12))
	require.Equal(t, New(6, 5), Add(New(1, 2), New(5, 3)))
	require.Equal(t, New(3, 4), AddScalar(New(1, 2), 2))
	require.Equal(t, New(3, 4), ScalarAdd(2, New(1, 2)))

	require.Equal(t, New[float32](5, 8), Mul(New[float32](2.5, 4), New[float32](2, 2)))
	require.Equal(t, New(5.0, 8.0), MulScalar(New(2.5, 4.0), 2))
	require.Equal(t, New(5.0, 8.0), ScalarMul(2, New(2.5, 4.0)))
	require.Equal(t, New(4, 8), Mul(New(2, 4), New(2, 2)))
}

func TestArithmeticIsComponentwise(t *testing.T) {
	u := New(7, -3)
	v := New(2, 5)
	s := 4

	ops := []struct {
		name   string
		vv     func(a, b Vec[int]) Vec[int]
		vs     func(v Vec[int], s int) Vec[int]
		sv     func(s int, v Vec[int]) Vec[int]
		scalar func(a, b int) int
	}{
		{"add", Add[int], AddScalar[int], ScalarAdd[int], func(a, b int) int { return a + b }},
		{"sub", Sub[int], SubScalar[int], ScalarSub[int], func(a, b int) int { return a - b }},
		{"mul", Mul[int], MulScalar[int], ScalarMul[int], func(a, b int) int { return a * b }},
		{"div", Div[int], DivScalar[int], ScalarDiv[int], func(a, b int) int { return a / b }},
		{"rem", Rem[int], RemScalar[int], ScalarRem[int], func(a, b int) int { return a % b }},
		{"and", And[int], AndScalar[int], ScalarAnd[int], func(a, b int) int { return a & b }},
		{"or", Or[int], OrScalar[int], ScalarOr[int], func(a, b int) int { return a | b }},
		{"xor", Xor[int], XorScalar[int], ScalarXor[int], func(a, b int) int { return a ^ b }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			got := op.vv(u, v)
			gotVS := op.vs(u, s)
			gotSV := op.sv(s, v)
			for i := 0; i < Size; i++ {
				require.Equal(t, op.scalar(u.At(i), v.At(i)), got.At(i))
				require.Equal(t, op.scalar(u.At(i), s), gotVS.At(i))
				require.Equal(t, op.scalar(s, v.At(i)), gotSV.At(i))
			}
		})
	}
}

func TestOperandsAreNotMutated(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	_ = Add(a, b)
	_ = Neg(a)
	require.Equal(t, New(1, 2), a)
	require.Equal(t, New(3, 4), b)
}

func TestCompoundAssignmentChains(t *testing.T) {
	v := New(1.0, 2.0)
	MulAssignScalar(AddAssign(&v, New(1.0, 1.0)), 3)
	require.Equal(t, New(6.0, 9.0), v)

	SubAssignScalar(DivAssign(&v, New(2.0, 3.0)), 1)
	require.Equal(t, New(2.0, 2.0), v)

	p := AddAssignScalar(&v, 0.5)
	require.Same(t, &v, p)

	// An operand of another component type is converted first.
	AddAssign(&v, Convert[float64](New(1, 2)))
	require.Equal(t, New(3.5, 4.5), v)
}

func TestIntegerCompoundAssignment(t *testing.T) {
	v := New(12, 10)
	RemAssignScalar(&v, 5)
	require.Equal(t, New(2, 0), v)

	ShlAssignScalar(OrAssign(&v, New(1, 1)), 2)
	require.Equal(t, New(12, 4), v)

	ShrAssign(&v, New(2, 1))
	require.Equal(t, New(3, 2), v)

	XorAssign(AndAssignScalar(&v, 2), New(3, 3))
	require.Equal(t, New(1, 1), v)

	AndAssign(&v, New(0, 1))
	XorAssignScalar(&v, 4)
	OrAssignScalar(&v, 8)
	ShrAssignScalar(&v, 1)
	ShlAssign(&v, New(1, 0))
	RemAssign(&v, New(5, 7))
	require.Equal(t, New(2, 6), v)
}

func TestShifts(t *testing.T) {
	require.Equal(t, New(4, 12), Shl(New(1, 3), New(2, 2)))
	require.Equal(t, New(8, 16), ShlScalar(New(1, 2), 3))
	require.Equal(t, New(2, 4), ScalarShl(1, New(1, 2)))
	require.Equal(t, New(1, 2), Shr(New(4, 8), New(2, 2)))
	require.Equal(t, New(2, 4), ShrScalar(New(4, 8), 1))
	require.Equal(t, New(8, 4), ScalarShr(16, New(1, 2)))
	require.Equal(t, New(^5, ^0), Not(New(5, 0)))
	require.Equal(t, New[uint8](0xfa, 0xff), Not(New[uint8](5, 0)))
}

func TestDivisionByZero(t *testing.T) {
	got := Div(New(1.0, -1.0), Vec[float64]{})
	require.True(t, math.IsInf(got.X, 1))
	require.True(t, math.IsInf(got.Y, -1))

	require.Panics(t, func() { _ = Div(New(1, 1), New(1, 0)) })
}

func TestEquality(t *testing.T) {
	a := New(1.5, 2.5)
	require.True(t, a == a)
	require.True(t, Equal(a, New(1.5, 2.5)))
	require.True(t, Equal(New(1.5, 2.5), a))
	require.False(t, Equal(a, New(1.5, 2.5000001)))
	require.True(t, NotEqual(a, New(1.5, 2.0)))

	nan := New(math.NaN(), 0)
	require.False(t, Equal(nan, nan))
}

func TestLogical(t *testing.T) {
	a := New(true, false)
	b := New(true, true)
	require.Equal(t, New(true, false), LogicalAnd(a, b))
	require.Equal(t, New(true, true), LogicalOr(a, b))
	require.Equal(t, New(false, true), LogicalNot(a))
	require.True(t, All(b))
	require.False(t, All(a))
	require.True(t, Any(a))
	require.False(t, Any(Vec[bool]{}))
}

func TestIncrementDecrement(t *testing.T) {
	v := New(1, 5)
	require.Equal(t, New(2, 6), *Inc(&v))

	old := PostInc(&v)
	require.Equal(t, New(2, 6), old)
	require.Equal(t, New(3, 7), v)

	old = PostDec(&v)
	require.Equal(t, New(3, 7), old)
	require.Equal(t, New(2, 6), v)

	require.Equal(t, New(1, 5), *Dec(&v))
}

func TestNeg(t *testing.T) {
	require.Equal(t, New(-1.5, 2.0), Neg(New(1.5, -2.0)))
}

func TestString(t *testing.T) {
	require.Equal(t, "vec2(1, 2)", New(1, 2).String())
	require.Equal(t, "vec2(1.5, -0.25)", New(1.5, -0.25).String())
	require.Equal(t, "vec2(true, false)", New(true, false).String())
}

func TestComponentwiseMath(t *testing.T) {
	v := New(4.0, 16.0)
	require.Equal(t, New(math.Sqrt(4.0), math.Sqrt(16.0)), Sqrt(v))
	require.Equal(t, Map(v, scalar.Sqrt[float64]), Sqrt(v))
	require.Equal(t, New(scalar.Sqrt(5.2), scalar.Sqrt(8.94)), Sqrt(New(5.2, 8.94)))
	require.Equal(t, New[float32](2, 4), Sqrt(New[float32](4, 16)))

	require.Equal(t, New(1.5, 2.0), Abs(New(-1.5, 2.0)))
	require.Equal(t, New(1.0, -2.0), Floor(New(1.2, -1.2)))
	require.Equal(t, New(2.0, -1.0), Ceil(New(1.2, -1.2)))
	require.Equal(t, New(3.0, -2.0), Round(New(2.5, -2.5)))
	require.True(t, ApproxEqual(Log(New(1.0, math.E)), New(0.0, 1.0), 1e-12))

	deg := New(180.0, 90.0)
	require.True(t, ApproxEqual(Degrees(Radians(deg)), deg, 1e-12))
	require.True(t, ApproxEqual(InvSqrt(New(4.0, 16.0)), New(0.5, 0.25), 1e-5))

	require.Equal(t, New(1, 5), Min(New(1, 7), New(3, 5)))
	require.Equal(t, New(3, 7), Max(New(1, 7), New(3, 5)))
	require.Equal(t, New(0, 10), Clamp(New(-4, 99), 0, 10))
}

func TestMapZipChangeComponentType(t *testing.T) {
	positive := Map(New(-1.0, 2.0), func(x float64) bool { return x > 0 })
	require.Equal(t, New(false, true), positive)

	less := Zip(New(1, 5), New(3, 3), func(a, b int) bool { return a < b })
	require.Equal(t, New(true, false), less)
}
