package batch

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/chapmankyle/simple-math/internal/testutil"
	"github.com/chapmankyle/simple-math/smath/vec2"
	"github.com/chapmankyle/simple-math/smath/vec3"
	"github.com/chapmankyle/simple-math/smath/vec4"
)

const tol = 1e-12

func randomVec3s(seed int64, n int) []vec3.Vec[float64] {
	vals := testutil.DeterministicValues(seed, 10, 3*n)
	out := make([]vec3.Vec[float64], n)
	for i := range out {
		out[i] = vec3.New(vals[3*i], vals[3*i+1], vals[3*i+2])
	}
	return out
}

func requireVec3s(t *testing.T, got *Vec3s, want []vec3.Vec[float64]) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("length = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if g := got.At(i); !vec3.ApproxEqual(g, w, tol) {
			t.Fatalf("index %d: got %v, want %v", i, g, w)
		}
	}
}

func TestPackUnpack(t *testing.T) {
	vs := randomVec3s(1, 17)
	b := PackVec3s(vs)
	if b.Len() != len(vs) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(vs))
	}
	got := b.Unpack()
	for i := range vs {
		if got[i] != vs[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], vs[i])
		}
	}

	b.Set(3, vec3.New(1.0, 2.0, 3.0))
	if b.X[3] != 1 || b.Y[3] != 2 || b.Z[3] != 3 {
		t.Fatalf("Set did not write component lanes: %v", b.At(3))
	}
}

func TestAppendAndCapacity(t *testing.T) {
	b := NewVec2s(0, WithCapacity(8))
	if cap(b.X) != 8 || cap(b.Y) != 8 {
		t.Fatalf("capacity = %d/%d, want 8", cap(b.X), cap(b.Y))
	}
	b.Append(vec2.New(1.0, 2.0), vec2.New(3.0, 4.0))
	if b.Len() != 2 || b.At(1) != vec2.New(3.0, 4.0) {
		t.Fatalf("after Append: len %d, At(1) = %v", b.Len(), b.At(1))
	}

	cfg := ApplyOptions(WithCapacity(-3), nil)
	if cfg.Capacity != 0 {
		t.Fatalf("negative capacity accepted: %d", cfg.Capacity)
	}
}

func TestArithmeticMatchesVectors(t *testing.T) {
	const n = 33
	as, bs := randomVec3s(2, n), randomVec3s(3, n)
	a, b := PackVec3s(as), PackVec3s(bs)
	dst := NewVec3s(n)

	sum := make([]vec3.Vec[float64], n)
	prod := make([]vec3.Vec[float64], n)
	scaled := make([]vec3.Vec[float64], n)
	for i := range as {
		sum[i] = vec3.Add(as[i], bs[i])
		prod[i] = vec3.Mul(as[i], bs[i])
		scaled[i] = vec3.MulScalar(as[i], -2.5)
	}

	if err := Add(dst, a, b); err != nil {
		t.Fatal(err)
	}
	requireVec3s(t, dst, sum)

	if err := Mul(dst, a, b); err != nil {
		t.Fatal(err)
	}
	requireVec3s(t, dst, prod)

	if err := Scale(dst, a, -2.5); err != nil {
		t.Fatal(err)
	}
	requireVec3s(t, dst, scaled)

	if err := AddInPlace(a, b); err != nil {
		t.Fatal(err)
	}
	requireVec3s(t, a, sum)

	c := PackVec3s(as)
	if err := MulInPlace(c, b); err != nil {
		t.Fatal(err)
	}
	requireVec3s(t, c, prod)
}

func TestAliasedDestination(t *testing.T) {
	a := PackVec4s([]vec4.Vec[float64]{vec4.New(1.0, 2.0, 3.0, 4.0)})
	if err := Add(a, a, a); err != nil {
		t.Fatal(err)
	}
	if got := a.At(0); got != vec4.New(2.0, 4.0, 6.0, 8.0) {
		t.Fatalf("Add(a, a, a) = %v", got)
	}
}

func TestLengths(t *testing.T) {
	vals := testutil.DeterministicValues(4, 5, 2*21)
	vs := make([]vec2.Vec[float64], 21)
	wantLen := make([]float64, len(vs))
	wantSq := make([]float64, len(vs))
	for i := range vs {
		vs[i] = vec2.New(vals[2*i], vals[2*i+1])
		wantSq[i] = vs[i].X*vs[i].X + vs[i].Y*vs[i].Y
		wantLen[i] = math.Sqrt(wantSq[i])
	}
	b := PackVec2s(vs)

	got := make([]float64, len(vs))
	if err := b.Lengths(got); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, wantLen, tol)

	if err := b.LengthsSquared(got); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, wantSq, tol)
}

func TestLengthMismatch(t *testing.T) {
	a, b := NewVec2s(3), NewVec2s(4)
	checks := map[string]error{
		"Add":        Add(a, a, b),
		"AddInPlace": AddInPlace(a, b),
		"Mul":        Mul(b, a, a),
		"MulInPlace": MulInPlace(a, b),
		"Scale":      Scale(a, b, 2),
		"Lengths":    a.Lengths(make([]float64, 2)),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%s: err = %v, want ErrLengthMismatch", name, err)
		}
	}
}

func TestPool(t *testing.T) {
	p := NewPool(func() *Vec3s { return NewVec3s(0) })
	b := p.Get(5)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	b.Set(4, vec3.New(1.0, 1.0, 1.0))
	p.Put(b)

	b = p.Get(8)
	for i := 0; i < b.Len(); i++ {
		if b.At(i) != (vec3.Vec[float64]{}) {
			t.Fatalf("index %d not zeroed: %v", i, b.At(i))
		}
	}
}

func TestResize(t *testing.T) {
	b := PackVec2s([]vec2.Vec[float64]{vec2.New(1.0, 2.0), vec2.New(3.0, 4.0)})
	b.Resize(1)
	b.Resize(3)
	if b.Len() != 3 || b.At(0) != vec2.New(1.0, 2.0) || b.At(1) != (vec2.Vec[float64]{}) {
		t.Fatalf("Resize: %v", b.Unpack())
	}
	b.Resize(-1)
	if b.Len() != 0 {
		t.Fatalf("Resize(-1): len %d", b.Len())
	}
}

func TestKernelLevel(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     cpu.SIMDLevel
	}{
		{"forced generic", cpu.Features{HasAVX2: true, ForceGeneric: true}, cpu.SIMDNone},
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true}, cpu.SIMDAVX2},
		{"sse2", cpu.Features{HasSSE2: true}, cpu.SIMDSSE2},
		{"neon", cpu.Features{HasNEON: true}, cpu.SIMDNEON},
		{"none", cpu.Features{}, cpu.SIMDNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := levelOf(tt.features); got != tt.want {
				t.Fatalf("levelOf = %v, want %v", got, tt.want)
			}
		})
	}

	if got, want := KernelLevel(), levelOf(cpu.DetectFeatures()); got != want {
		t.Fatalf("KernelLevel() = %v, want %v", got, want)
	}
}

func TestRaggedBuffer(t *testing.T) {
	ragged := &Vec3s{X: make([]float64, 3), Y: make([]float64, 2), Z: make([]float64, 3)}
	ok := NewVec3s(3)

	checks := map[string]error{
		"Add":        Add(ok, ragged, ok),
		"AddInPlace": AddInPlace(ragged, ok),
		"Mul":        Mul(ok, ok, ragged),
		"MulInPlace": MulInPlace(ok, ragged),
		"Scale":      Scale(ok, ragged, 2),
		"Lengths":    (&Vec2s{X: make([]float64, 2), Y: make([]float64, 1)}).Lengths(make([]float64, 2)),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%s: err = %v, want ErrLengthMismatch", name, err)
		}
	}
}
