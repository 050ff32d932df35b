package core

import "testing"

type meters float64

type count uint16

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		got  Category
		want Category
	}{
		{name: "int", got: CategoryOf[int](), want: CategoryInteger},
		{name: "int64", got: CategoryOf[int64](), want: CategoryInteger},
		{name: "uint8", got: CategoryOf[uint8](), want: CategoryInteger},
		{name: "rune", got: CategoryOf[rune](), want: CategoryInteger},
		{name: "float32", got: CategoryOf[float32](), want: CategoryFloating},
		{name: "float64", got: CategoryOf[float64](), want: CategoryFloating},
		{name: "bool", got: CategoryOf[bool](), want: CategoryNone},
		{name: "string", got: CategoryOf[string](), want: CategoryNone},
		{name: "struct", got: CategoryOf[struct{}](), want: CategoryNone},
		{name: "interface", got: CategoryOf[error](), want: CategoryNone},
		{name: "named float", got: CategoryOf[meters](), want: CategoryFloating},
		{name: "named uint", got: CategoryOf[count](), want: CategoryInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("CategoryOf = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPredicatesAreExclusive(t *testing.T) {
	check := func(name string, isInt, isFloat bool) {
		t.Helper()
		if isInt && isFloat {
			t.Fatalf("%s: classified as both integer and floating", name)
		}
	}

	check("int", IsInteger[int](), IsFloating[int]())
	check("float64", IsInteger[float64](), IsFloating[float64]())
	check("bool", IsInteger[bool](), IsFloating[bool]())

	if !IsInteger[int]() || IsFloating[int]() {
		t.Fatal("int must be integer-like only")
	}
	if IsInteger[float32]() || !IsFloating[float32]() {
		t.Fatal("float32 must be floating-point-like only")
	}
	if IsInteger[bool]() || IsFloating[bool]() || IsNumeric[bool]() {
		t.Fatal("bool must be neither integer nor floating")
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryInteger.String() != "integer" || CategoryFloating.String() != "floating" ||
		CategoryNone.String() != "none" || Category(99).String() != "unknown" {
		t.Fatal("unexpected Category.String output")
	}
}

func TestValidLength(t *testing.T) {
	for l := -1; l <= 6; l++ {
		want := l >= 1 && l <= 4
		if got := ValidLength(l); got != want {
			t.Fatalf("ValidLength(%d) = %v, want %v", l, got, want)
		}
	}
}
