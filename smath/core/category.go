package core

import "reflect"

// Category classifies a scalar type.
type Category int

const (
	// CategoryNone covers bool, string and every other non-numeric kind.
	CategoryNone Category = iota

	// CategoryInteger covers the signed and unsigned integer kinds.
	CategoryInteger

	// CategoryFloating covers float32 and float64.
	CategoryFloating
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryInteger:
		return "integer"
	case CategoryFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// CategoryOf returns the category of T.
func CategoryOf[T any]() Category {
	var zero T

	// Fast path for the predeclared types; named types fall through to reflect.
	switch any(zero).(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return CategoryInteger
	case float32, float64:
		return CategoryFloating
	case bool, string:
		return CategoryNone
	}

	t := reflect.TypeOf(zero)
	if t == nil {
		return CategoryNone
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return CategoryInteger
	case reflect.Float32, reflect.Float64:
		return CategoryFloating
	default:
		return CategoryNone
	}
}

// IsInteger reports whether T is integer-like.
func IsInteger[T any]() bool {
	return CategoryOf[T]() == CategoryInteger
}

// IsFloating reports whether T is floating-point-like.
func IsFloating[T any]() bool {
	return CategoryOf[T]() == CategoryFloating
}

// IsNumeric reports whether T is integer-like or floating-point-like.
func IsNumeric[T any]() bool {
	return CategoryOf[T]() != CategoryNone
}
