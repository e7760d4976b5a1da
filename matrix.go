package quat

import (
	"strings"

	"github.com/solarlune/quat/math32"
	"golang.org/x/image/math/f32"
)

// Matrix3 represents a 3x3 rotation matrix. A Matrix3 in quat is row-major (i.e. matrix[row][column]), and is
// meant to be multiplied with column vectors (see MultVec()).
type Matrix3 [3][3]float32

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3FromF32 creates a Matrix3 out of a row-major golang.org/x/image/math/f32 Mat3.
func Matrix3FromF32(m f32.Mat3) Matrix3 {
	return Matrix3{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

// F32 returns the Matrix3 as a row-major golang.org/x/image/math/f32 Mat3.
func (matrix Matrix3) F32() f32.Mat3 {
	return f32.Mat3{
		matrix[0][0], matrix[0][1], matrix[0][2],
		matrix[1][0], matrix[1][1], matrix[1][2],
		matrix[2][0], matrix[2][1], matrix[2][2],
	}
}

// ToMatrix3 returns a rotation Matrix3 representing the Quaternion's rotation. The Quaternion is normalized first,
// so passing a non-unit Quaternion is safe; the result is always the rotation matrix for quat.Normalize().
func (quat Quaternion) ToMatrix3() Matrix3 {

	q := quat.Normalize()

	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Matrix3{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}

}

// Mult multiplies a Matrix3 by another provided Matrix3 (matrix * other), returning the result. Applied to a vector,
// the result performs other's transformation first.
func (matrix Matrix3) Mult(other Matrix3) Matrix3 {

	var newMat Matrix3

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] + matrix[row][1]*other[1][col] + matrix[row][2]*other[2][col]
		}
	}

	return newMat

}

// MultVec multiplies the Matrix3 by the column Vector provided, returning the transformed Vector.
func (matrix Matrix3) MultVec(vec Vector) Vector {
	return Vector{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z,
	}
}

// Transposed returns a transposed copy of the Matrix3. For a rotation matrix, this is its inverse.
func (matrix Matrix3) Transposed() Matrix3 {
	var newMat Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			newMat[col][row] = matrix[row][col]
		}
	}
	return newMat
}

// Determinant returns the determinant of the Matrix3; a pure rotation matrix has a determinant of 1.
func (matrix Matrix3) Determinant() float32 {
	return matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[1][2]*matrix[2][1]) -
		matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
		matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
}

// Equals returns if the two matrices are componentwise within the tolerance given.
func (matrix Matrix3) Equals(other Matrix3, tolerance float32) bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if !math32.AlmostEqual(matrix[row][col], other[row][col], tolerance) {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix3) IsIdentity() bool {
	return matrix.Equals(NewMatrix3(), math32.Epsilon)
}

// IsOrthonormal returns if the Matrix3 multiplied by its transpose gives the identity matrix (to within the tolerance given),
// which is the case for any valid rotation matrix.
func (matrix Matrix3) IsOrthonormal(tolerance float32) bool {
	return matrix.Mult(matrix.Transposed()).Equals(NewMatrix3(), tolerance)
}

// String returns the Matrix3 with one "[a, b, c]" row per line and three decimal digits of precision.
func (matrix Matrix3) String() string {
	return matrix.Format(3)
}

// Format returns the Matrix3 with one "[a, b, c]" row per line and the number of decimal digits given.
func (matrix Matrix3) Format(precision int) string {
	rows := make([]string, 0, 3)
	for _, row := range matrix {
		rows = append(rows, "["+strings.Trim(NewVector(row[0], row[1], row[2]).Format(precision), "()")+"]")
	}
	return strings.Join(rows, "\n")
}
