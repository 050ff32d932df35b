// Package vec4 provides a four-component vector generic over its component
// type. See package vec2 for an overview of the operations.
package vec4
