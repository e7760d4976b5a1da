package quat

import (
	"fmt"

	"github.com/solarlune/quat/math32"
)

// Quaternion represents a rotation (or, for intermediate results, any 4-component hypercomplex number) of the form
// w + xi + yj + zk. W is the scalar part, and X, Y, and Z make up the vector part.
// Quaternions are values; every function returns a new Quaternion rather than altering the one it was called on,
// so method-chaining is easy and they can be shared freely between goroutines.
type Quaternion struct {
	W float32 // The scalar (real) part of the Quaternion
	X float32 // The i component of the vector part
	Y float32 // The j component of the vector part
	Z float32 // The k component of the vector part
}

// NewQuaternion creates a new Quaternion out of the w, x, y, and z components given. No validation is done, so this
// can be used to build non-unit Quaternions (for example, as operands for Add()).
func NewQuaternion(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// NewQuaternionIdentity returns the identity Quaternion, (1, 0, 0, 0), which represents no rotation at all.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromAxisAngle creates a new unit Quaternion representing a rotation of angle radians around the axis
// given by axisX, axisY, and axisZ. The axis doesn't need to be normalized beforehand.
// If the axis has a length of 0, it's left as-is, and the result has a zero vector part with W = cos(angle / 2).
// For example, NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2).RotateVector(NewVector(1, 0, 0)) returns approximately (0, 0, -1).
func NewQuaternionFromAxisAngle(axisX, axisY, axisZ, angle float32) Quaternion {

	halfAngle := angle * 0.5
	sinHalf := math32.Sin(halfAngle)
	cosHalf := math32.Cos(halfAngle)

	if length := math32.Sqrt(axisX*axisX + axisY*axisY + axisZ*axisZ); length > 0 {
		axisX /= length
		axisY /= length
		axisZ /= length
	}

	return NewQuaternion(cosHalf, axisX*sinHalf, axisY*sinHalf, axisZ*sinHalf)

}

// NewQuaternionFromAxisAngleVector is NewQuaternionFromAxisAngle() taking the axis as a Vector.
func NewQuaternionFromAxisAngleVector(axis Vector, angle float32) Quaternion {
	return NewQuaternionFromAxisAngle(axis.X, axis.Y, axis.Z, angle)
}

// Add returns the componentwise sum of the calling Quaternion and the other Quaternion provided.
// Note that this is raw algebraic addition; it does not compose rotations (use Mult() for that), and the result is
// generally not a unit Quaternion.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	return NewQuaternion(quat.W+other.W, quat.X+other.X, quat.Y+other.Y, quat.Z+other.Z)
}

// Sub returns the componentwise difference of the calling Quaternion and the other Quaternion provided.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	return NewQuaternion(quat.W-other.W, quat.X-other.X, quat.Y-other.Y, quat.Z-other.Z)
}

// Scale returns a copy of the Quaternion with all four components multiplied by the scalar given.
func (quat Quaternion) Scale(scalar float32) Quaternion {
	return NewQuaternion(quat.W*scalar, quat.X*scalar, quat.Y*scalar, quat.Z*scalar)
}

// Negated returns a copy of the Quaternion with all four components negated. For a unit Quaternion, the result
// represents the same rotation as the original.
func (quat Quaternion) Negated() Quaternion {
	return quat.Scale(-1)
}

// Mult returns the Hamilton product of the calling Quaternion and the other Quaternion (quat * other).
// Quaternion multiplication is not commutative. When both are rotations, the result applies other first,
// and then quat; so to rotate by r1 and then by r2, you'd call r2.Mult(r1).
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return NewQuaternion(
		quat.W*other.W-quat.X*other.X-quat.Y*other.Y-quat.Z*other.Z,
		quat.W*other.X+quat.X*other.W+quat.Y*other.Z-quat.Z*other.Y,
		quat.W*other.Y-quat.X*other.Z+quat.Y*other.W+quat.Z*other.X,
		quat.W*other.Z+quat.X*other.Y-quat.Y*other.X+quat.Z*other.W,
	)
}

// Conjugate returns the Quaternion's conjugate; that is, a copy with the vector part negated and W left unchanged.
// For unit Quaternions, this is equal to the inverse.
func (quat Quaternion) Conjugate() Quaternion {
	return NewQuaternion(quat.W, -quat.X, -quat.Y, -quat.Z)
}

// Dot returns the dot product of the two Quaternions, treated as 4D vectors.
func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.W*other.W + quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z
}

// MagnitudeSquared returns the squared length of the Quaternion; this is faster than Magnitude() as it avoids a square root.
func (quat Quaternion) MagnitudeSquared() float32 {
	return quat.Dot(quat)
}

// Magnitude returns the length (Euclidean norm) of the Quaternion.
func (quat Quaternion) Magnitude() float32 {
	return math32.Sqrt(quat.MagnitudeSquared())
}

// Normalize returns a unit-length copy of the Quaternion.
// If the Quaternion has a magnitude of 0, the identity Quaternion is returned instead.
func (quat Quaternion) Normalize() Quaternion {
	mag := quat.Magnitude()
	if mag <= 0 {
		return NewQuaternionIdentity()
	}
	return NewQuaternion(quat.W/mag, quat.X/mag, quat.Y/mag, quat.Z/mag)
}

// Inverse returns the multiplicative inverse of the Quaternion (its conjugate divided by its squared magnitude).
// For unit Quaternions, this is the same as Conjugate(). If the Quaternion has a magnitude of 0, the identity
// Quaternion is returned instead.
func (quat Quaternion) Inverse() Quaternion {
	magSq := quat.MagnitudeSquared()
	if magSq <= 0 {
		return NewQuaternionIdentity()
	}
	conj := quat.Conjugate()
	return NewQuaternion(conj.W/magSq, conj.X/magSq, conj.Y/magSq, conj.Z/magSq)
}

// IsZero returns if all four components of the Quaternion are 0.
func (quat Quaternion) IsZero() bool {
	return quat.W == 0 && quat.X == 0 && quat.Y == 0 && quat.Z == 0
}

// IsIdentity returns if the Quaternion is exactly the identity Quaternion.
func (quat Quaternion) IsIdentity() bool {
	return quat == NewQuaternionIdentity()
}

// Equals returns if the two Quaternions are componentwise equal to within the tolerance given.
// Note that q and q.Negated() represent the same rotation but are not Equal; use SameRotation() for that.
func (quat Quaternion) Equals(other Quaternion, tolerance float32) bool {
	return math32.AlmostEqual(quat.W, other.W, tolerance) &&
		math32.AlmostEqual(quat.X, other.X, tolerance) &&
		math32.AlmostEqual(quat.Y, other.Y, tolerance) &&
		math32.AlmostEqual(quat.Z, other.Z, tolerance)
}

// SameRotation returns if the two Quaternions, once normalized, represent the same rotation to within the tolerance given.
func (quat Quaternion) SameRotation(other Quaternion, tolerance float32) bool {
	a := quat.Normalize()
	b := other.Normalize()
	return a.Equals(b, tolerance) || a.Equals(b.Negated(), tolerance)
}

// Angle returns the angle in radians of the rotation between the two Quaternions, along the shorter arc.
func (quat Quaternion) Angle(other Quaternion) float32 {
	dot := math32.Abs(quat.Normalize().Dot(other.Normalize()))
	return 2 * math32.Acos(math32.Clamp(dot, 0, 1))
}

// AxisAngle returns the Quaternion's rotation as a unit axis and an angle in radians. A rotation with no discernible
// axis (such as the identity) returns an axis of +X.
func (quat Quaternion) AxisAngle() (Vector, float32) {
	q := quat.Normalize()
	if q.W < 0 {
		q = q.Negated()
	}
	angle := 2 * math32.Acos(math32.Clamp(q.W, -1, 1))
	s := math32.Sqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return WorldRight, angle
	}
	return NewVector(q.X/s, q.Y/s, q.Z/s), angle
}

// Vector returns the vector part (X, Y, Z) of the Quaternion.
func (quat Quaternion) Vector() Vector {
	return NewVector(quat.X, quat.Y, quat.Z)
}

// String returns the Quaternion formatted as "(w, x, y, z)", with three decimal digits of precision.
func (quat Quaternion) String() string {
	return quat.Format(3)
}

// Format returns the Quaternion formatted as "(w, x, y, z)", with the number of decimal digits given.
func (quat Quaternion) Format(precision int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f, %.*f)", precision, quat.W, precision, quat.X, precision, quat.Y, precision, quat.Z)
}
