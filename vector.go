package quat

import (
	"fmt"

	"github.com/solarlune/quat/math32"
	"golang.org/x/image/math/f32"
)

// WorldRight represents a unit vector in the global direction of WorldRight on the right-handed coordinate system (+X).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of WorldUp on the right-handed coordinate system (+Y).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of WorldBackward on the right-handed coordinate system (+Z, towards the viewer).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector; in quat, it's what gets rotated by a Quaternion.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VectorFromF32 creates a new Vector from a golang.org/x/image/math/f32 Vec3.
func VectorFromF32(v f32.Vec3) Vector {
	return Vector{X: v[0], Y: v[1], Z: v[2]}
}

// F32 returns the Vector as a golang.org/x/image/math/f32 Vec3.
func (vec Vector) F32() f32.Vec3 {
	return f32.Vec3{vec.X, vec.Y, vec.Z}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector by the given scalar, returning a copy.
func (vec Vector) Scale(scalar float32) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {
	return Vector{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float32 {
	return math32.Sqrt(vec.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math32.Sqrt().
func (vec Vector) MagnitudeSquared() float32 {
	return vec.Dot(vec)
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unaltered.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l == 0 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vectors are componentwise within the tolerance given.
func (vec Vector) Equals(other Vector, tolerance float32) bool {
	return math32.AlmostEqual(vec.X, other.X, tolerance) &&
		math32.AlmostEqual(vec.Y, other.Y, tolerance) &&
		math32.AlmostEqual(vec.Z, other.Z, tolerance)
}

// String returns the Vector formatted as "(x, y, z)", with three decimal digits of precision.
func (vec Vector) String() string {
	return vec.Format(3)
}

// Format returns the Vector formatted as "(x, y, z)", with the number of decimal digits given.
func (vec Vector) Format(precision int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", precision, vec.X, precision, vec.Y, precision, vec.Z)
}

// RotateVector rotates the given Vector by the Quaternion, returning the rotated copy. This is computed as
// quat * (0, vec) * quat.Inverse(), so the Quaternion doesn't need to be normalized beforehand.
// A zero Quaternion has no rotation to apply, so the Vector is returned unrotated.
func (quat Quaternion) RotateVector(vec Vector) Vector {

	if quat.MagnitudeSquared() <= 0 {
		return vec
	}

	v := NewQuaternion(0, vec.X, vec.Y, vec.Z)
	rotated := quat.Mult(v).Mult(quat.Inverse())
	return rotated.Vector()

}
