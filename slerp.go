package quat

import "github.com/solarlune/quat/math32"

// SlerpLinearThreshold is the dot product above which Slerp() falls back to a normalized linear interpolation.
// Past this point the two rotations are so close that dividing by sin(theta) is no longer numerically stable.
const SlerpLinearThreshold = 0.9995

// Slerp performs spherical linear interpolation from the calling Quaternion to the other Quaternion by the percent t,
// returning the result. Both Quaternions are normalized first, and the interpolation always takes the shorter path
// (if the two are more than 180 degrees apart on the hypersphere, other is negated, as q and -q are the same rotation).
//
// t isn't clamped; values outside of 0 to 1 extrapolate along the same great arc.
// Slerp(other, 0) returns the normalized calling Quaternion, while Slerp(other, 1) returns the normalized other
// Quaternion (or its negation, if it had to be flipped to take the shorter path).
func (quat Quaternion) Slerp(other Quaternion, t float32) Quaternion {

	a := quat.Normalize()
	b := other.Normalize()

	dot := a.Dot(b)

	if dot < 0 {
		b = b.Negated()
		dot = -dot
	}

	if dot > SlerpLinearThreshold {
		return a.Add(b.Sub(a).Scale(t)).Normalize()
	}

	theta := math32.Acos(dot)
	sinTheta := math32.Sin(theta)
	ratioA := math32.Sin((1-t)*theta) / sinTheta
	ratioB := math32.Sin(t*theta) / sinTheta

	return a.Scale(ratioA).Add(b.Scale(ratioB))

}

// Lerp linearly interpolates from the calling Quaternion to the other by the percent given, normalizing the result.
// Like Slerp(), it takes the shorter path, but it doesn't move at a constant angular velocity.
func (quat Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	if quat.Dot(other) < 0 {
		other = other.Negated()
	}
	return quat.Add(other.Sub(quat).Scale(t)).Normalize()
}
