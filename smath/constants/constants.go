// Package constants provides the mathematical constants used by smath.
//
// The values are written out as literals rather than computed so that they
// match the documented digits exactly. All constants are untyped, so they
// convert to float32 or float64 at the point of use.
package constants

const (
	Pi    = 3.14159265358979323846 // pi
	TwoPi = 6.28318530717958647693 // 2*pi
	Pi2   = 1.57079632679489661923 // pi/2
	Pi4   = 0.78539816339744830962 // pi/4

	Rad = 0.01745329251994329577 // pi/180, radians per degree
	Deg = 57.2957795130823208768 // 180/pi, degrees per radian

	E      = 2.7182818284590452354 // e
	Log2E  = 1.4426950408889634074 // log_2 e
	Log10E = 0.4342944819032518277 // log_10 e
	Ln2    = 0.6931471805599453094 // log_e 2
	Ln10   = 2.3025850929940456840 // log_e 10

	Sqrt2 = 1.41421356237309504880 // sqrt(2)
)
