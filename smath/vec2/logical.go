package vec2

// LogicalAnd returns a && b componentwise.
func LogicalAnd(a, b Vec[bool]) Vec[bool] {
	return Vec[bool]{a.X && b.X, a.Y && b.Y}
}

// LogicalOr returns a || b componentwise.
func LogicalOr(a, b Vec[bool]) Vec[bool] {
	return Vec[bool]{a.X || b.X, a.Y || b.Y}
}

// LogicalNot returns !v componentwise.
func LogicalNot(v Vec[bool]) Vec[bool] {
	return Vec[bool]{!v.X, !v.Y}
}

// All reports whether every component is true.
func All(v Vec[bool]) bool {
	return v.X && v.Y
}

// Any reports whether at least one component is true.
func Any(v Vec[bool]) bool {
	return v.X || v.Y
}
