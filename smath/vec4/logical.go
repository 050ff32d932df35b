package vec4

// LogicalAnd returns a && b componentwise.
func LogicalAnd(a, b Vec[bool]) Vec[bool] {
	return Vec[bool]{a.X && b.X, a.Y && b.Y, a.Z && b.Z, a.W && b.W}
}

// LogicalOr returns a || b componentwise.
func LogicalOr(a, b Vec[bool]) Vec[bool] {
	return Vec[bool]{a.X || b.X, a.Y || b.Y, a.Z || b.Z, a.W || b.W}
}

// LogicalNot returns !v componentwise.
func LogicalNot(v Vec[bool]) Vec[bool] {
	return Vec[bool]{!v.X, !v.Y, !v.Z, !v.W}
}

// All reports whether every component is true.
func All(v Vec[bool]) bool {
	return v.X && v.Y && v.Z && v.W
}

// Any reports whether at least one component is true.
func Any(v Vec[bool]) bool {
	return v.X || v.Y || v.Z || v.W
}
