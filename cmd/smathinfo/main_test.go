package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestLookup(t *testing.T) {
	for _, p := range registry {
		got, err := lookup(" " + strings.ToUpper(p.name))
		if err != nil {
			t.Fatalf("lookup(%q): %v", p.name, err)
		}
		if got.name != p.name {
			t.Fatalf("lookup(%q) = %q", p.name, got.name)
		}
	}

	if _, err := lookup("cbrt"); !errors.Is(err, errUnknownPrimitive) {
		t.Fatalf("lookup(cbrt) err = %v, want errUnknownPrimitive", err)
	}
}

func TestParseValues(t *testing.T) {
	got, err := parseValues([]string{"2", "-1.5", "1e3"})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, -1.5, 1000}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := parseValues(nil); err == nil {
		t.Fatal("expected error for no values")
	}
	if _, err := parseValues([]string{"1", "x"}); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}

func TestPrintEval(t *testing.T) {
	var buf bytes.Buffer
	if err := printEval(&buf, "sqrt", []float64{4, 2}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "4 ") || !strings.HasSuffix(lines[2], "0.000e+00") {
		t.Fatalf("unexpected row %q", lines[2])
	}

	if err := printEval(&buf, "nope", []float64{1}); !errors.Is(err, errUnknownPrimitive) {
		t.Fatalf("err = %v, want errUnknownPrimitive", err)
	}
}

func TestPrintConstants(t *testing.T) {
	var buf bytes.Buffer
	if err := printConstants(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Pi ", "3.1415926535897931", "Sqrt2", "1.4142135623730951"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCPU(t *testing.T) {
	var buf bytes.Buffer
	f := cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}
	if err := printCPU(&buf, f, cpu.SIMDAVX2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "amd64") || !strings.Contains(out, "AVX2") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)
	names := strings.Fields(buf.String())
	if len(names) != len(registry) {
		t.Fatalf("got %d names, want %d", len(names), len(registry))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
