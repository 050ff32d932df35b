// Package vec3 provides a three-component vector generic over its component
// type.
//
// A Vec can be built from shorter vectors with FromVec1 and FromVec2, and
// truncated with XY. See package vec2 for the naming of the operator
// families.
package vec3
