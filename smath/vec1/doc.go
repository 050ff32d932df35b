// Package vec1 provides a one-component vector generic over its component
// type. It mirrors the API of vec2, vec3 and vec4 so that code written
// against one length reads the same for every other.
package vec1
