// math32 is a stand-in for the built-in math package, but the functions take float32s instead of float64s.
// Quaternions, vectors, and matrices in quat are single-precision, so this keeps the conversions in one place.
package math32

import "math"

// Pi is math.Pi as a float32.
const Pi = float32(math.Pi)

// Epsilon is the default tolerance used by AlmostEqual.
const Epsilon = 1e-5

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in quat use).
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / Pi * 180
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// AlmostEqual returns if a and b are within tolerance of each other.
func AlmostEqual(a, b, tolerance float32) bool {
	return Abs(a-b) <= tolerance
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
