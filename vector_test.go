package quat

import (
	"math/rand"
	"testing"

	"github.com/solarlune/quat/math32"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestRotateVectorQuarterTurnAroundY(t *testing.T) {
	rotation := NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2)
	assertVector(t, NewVector(0, 0, -1), rotation.RotateVector(NewVector(1, 0, 0)))
}

func TestRotateVector(t *testing.T) {
	testCases := []struct {
		name     string
		rotation Quaternion
		vec      Vector
		expected Vector
	}{
		{name: "identity", rotation: NewQuaternionIdentity(), vec: NewVector(1, 2, 3), expected: NewVector(1, 2, 3)},
		{name: "quarter turn around Z", rotation: NewQuaternionFromAxisAngle(0, 0, 1, math32.Pi/2), vec: WorldRight, expected: WorldUp},
		{name: "half turn around X", rotation: NewQuaternionFromAxisAngle(1, 0, 0, math32.Pi), vec: NewVector(0, 1, 1), expected: NewVector(0, -1, -1)},
		{name: "vector on the axis is unchanged", rotation: NewQuaternionFromAxisAngle(1, 1, 1, 2), vec: NewVector(2, 2, 2), expected: NewVector(2, 2, 2)},
		{name: "non-unit rotation", rotation: NewQuaternionFromAxisAngle(0, 0, 1, math32.Pi/2).Scale(4), vec: WorldRight, expected: WorldUp},
		{name: "zero rotation is a no-op", rotation: Quaternion{}, vec: NewVector(1, 2, 3), expected: NewVector(1, 2, 3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertVector(t, tc.expected, tc.rotation.RotateVector(tc.vec))
		})
	}
}

func TestRotateVectorPreservesMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, q := range randomUnitQuaternions(50) {
		v := NewVector(rng.Float32()*10-5, rng.Float32()*10-5, rng.Float32()*10-5)
		assert.InDelta(t, v.Magnitude(), q.RotateVector(v).Magnitude(), 1e-4)
	}
}

func TestRotateVectorMatchesMatrix(t *testing.T) {
	v := NewVector(0.3, -2, 5)
	for _, q := range randomUnitQuaternions(20) {
		assertVector(t, q.ToMatrix3().MultVec(v), q.RotateVector(v))
	}
}

func TestVectorUnit(t *testing.T) {
	assertVector(t, NewVector(0.6, 0, 0.8), NewVector(3, 0, 4).Unit())
	assert.Equal(t, Vector{}, Vector{}.Unit())
}

func TestVectorCross(t *testing.T) {
	assert.Equal(t, WorldBackward, WorldRight.Cross(WorldUp))
	assert.Equal(t, WorldRight, WorldUp.Cross(WorldBackward))
}

func TestVectorF32(t *testing.T) {
	v := NewVector(1, 2, 3)
	assert.Equal(t, f32.Vec3{1, 2, 3}, v.F32())
	assert.Equal(t, v, VectorFromF32(v.F32()))
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "(0.000, 0.000, -1.000)", NewVector(0, 0, -1).String())
}

func BenchmarkRotateVector(b *testing.B) {
	q := NewQuaternionFromAxisAngle(0, 1, 0, 0.4)
	v := NewVector(1, 2, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v = q.RotateVector(v)
	}
}
