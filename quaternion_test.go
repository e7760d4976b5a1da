package quat

import (
	"math/rand"
	"testing"

	"github.com/solarlune/quat/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func assertQuaternion(t *testing.T, expected, actual Quaternion, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.W, actual.W, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, msgAndArgs...)
}

func assertVector(t *testing.T, expected, actual Vector, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, msgAndArgs...)
}

func randomUnitQuaternions(count int) []Quaternion {
	rng := rand.New(rand.NewSource(42))
	quats := make([]Quaternion, 0, count)
	for len(quats) < count {
		q := NewQuaternion(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		if q.Magnitude() < 0.1 {
			continue
		}
		quats = append(quats, q.Normalize())
	}
	return quats
}

func TestNewQuaternionKeepsComponents(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	assert.Equal(t, Quaternion{W: 1, X: 2, Y: 3, Z: 4}, q)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, Quaternion{W: 1}, NewQuaternionIdentity())
	assert.True(t, NewQuaternionIdentity().IsIdentity())
}

func TestFromAxisAngle(t *testing.T) {
	testCases := []struct {
		name     string
		axis     Vector
		angle    float32
		expected Quaternion
	}{
		{
			name:     "quarter turn around Y",
			axis:     NewVector(0, 1, 0),
			angle:    math32.Pi / 2,
			expected: NewQuaternion(0.70710677, 0, 0.70710677, 0),
		},
		{
			name:     "axis is normalized first",
			axis:     NewVector(0, 0, 10),
			angle:    math32.Pi / 2,
			expected: NewQuaternion(0.70710677, 0, 0, 0.70710677),
		},
		{
			name:     "zero angle is identity",
			axis:     NewVector(1, 1, 1),
			angle:    0,
			expected: NewQuaternionIdentity(),
		},
		{
			name:     "zero axis leaves the vector part at zero",
			axis:     NewVector(0, 0, 0),
			angle:    1.3,
			expected: NewQuaternion(math32.Cos(0.65), 0, 0, 0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewQuaternionFromAxisAngleVector(tc.axis, tc.angle)
			assertQuaternion(t, tc.expected, q)
			assert.False(t, math32.IsNaN(q.W) || math32.IsNaN(q.X) || math32.IsNaN(q.Y) || math32.IsNaN(q.Z))
		})
	}
}

func TestAddIsComponentwise(t *testing.T) {
	sum := NewQuaternion(1, 2, 3, 4).Add(NewQuaternion(2, 1, 0.5, 1.5))
	assert.Equal(t, NewQuaternion(3, 3, 3.5, 5.5), sum)
}

func TestMultHamiltonProduct(t *testing.T) {
	q1 := NewQuaternion(1, 2, 3, 4)
	q2 := NewQuaternion(2, 1, 0.5, 1.5)

	// w = 1*2 - 2*1 - 3*0.5 - 4*1.5
	// x = 1*1 + 2*2 + 3*1.5 - 4*0.5
	// y = 1*0.5 - 2*1.5 + 3*2 + 4*1
	// z = 1*1.5 + 2*0.5 - 3*1 + 4*2
	assert.Equal(t, NewQuaternion(-7.5, 7.5, 7.5, 7.5), q1.Mult(q2))

	assert.NotEqual(t, q1.Mult(q2), q2.Mult(q1), "Hamilton product should not commute")
}

func TestMultBasisUnits(t *testing.T) {
	i := NewQuaternion(0, 1, 0, 0)
	j := NewQuaternion(0, 0, 1, 0)
	k := NewQuaternion(0, 0, 0, 1)
	minusOne := NewQuaternion(-1, 0, 0, 0)

	assert.Equal(t, k, i.Mult(j))
	assert.Equal(t, k.Negated(), j.Mult(i))
	assert.Equal(t, minusOne, i.Mult(i))
	assert.Equal(t, minusOne, i.Mult(j).Mult(k))
}

func TestMultIdentityLaws(t *testing.T) {
	identity := NewQuaternionIdentity()
	for _, q := range randomUnitQuaternions(50) {
		assertQuaternion(t, q, identity.Mult(q))
		assertQuaternion(t, q, q.Mult(identity))
	}
}

func TestMultCompositionOrder(t *testing.T) {
	rotX := NewQuaternionFromAxisAngle(1, 0, 0, math32.Pi/2)
	rotY := NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2)
	v := NewVector(0, 0, 1)

	// rotY.Mult(rotX) applies rotX first: +Z -> -Y (around X), which Y leaves alone.
	combined := rotY.Mult(rotX)
	assertVector(t, rotY.RotateVector(rotX.RotateVector(v)), combined.RotateVector(v))
	assertVector(t, NewVector(0, -1, 0), combined.RotateVector(v))
}

func TestConjugate(t *testing.T) {
	assert.Equal(t, NewQuaternion(1, -2, -3, -4), NewQuaternion(1, 2, 3, 4).Conjugate())
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.477226, NewQuaternion(1, 2, 3, 4).Magnitude(), tolerance)
	assert.Equal(t, float32(0), Quaternion{}.Magnitude())
	assert.Equal(t, float32(1), NewQuaternionIdentity().Magnitude())
}

func TestNormalize(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4).Normalize()
	assertQuaternion(t, NewQuaternion(0.18257418, 0.36514837, 0.5477226, 0.73029673), q)
	assert.InDelta(t, 1, q.Magnitude(), tolerance)
}

func TestNormalizeZeroFallsBackToIdentity(t *testing.T) {
	assert.Equal(t, NewQuaternionIdentity(), Quaternion{}.Normalize())
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, q := range []Quaternion{
		NewQuaternion(1, 2, 3, 4),
		NewQuaternion(-0.001, 0, 0.002, 0),
		NewQuaternion(100, -50, 25, 0.5),
	} {
		once := q.Normalize()
		assertQuaternion(t, once, once.Normalize())
	}
}

func TestInverse(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	inv := q.Inverse()
	assertQuaternion(t, NewQuaternion(1.0/30, -2.0/30, -3.0/30, -4.0/30), inv)
	assertQuaternion(t, NewQuaternionIdentity(), q.Mult(inv))
	assertQuaternion(t, NewQuaternionIdentity(), inv.Mult(q))
}

func TestInverseZeroFallsBackToIdentity(t *testing.T) {
	assert.Equal(t, NewQuaternionIdentity(), Quaternion{}.Inverse())
}

func TestInverseOfUnitIsConjugate(t *testing.T) {
	for _, q := range randomUnitQuaternions(50) {
		assertQuaternion(t, q.Conjugate(), q.Inverse())
	}
}

func TestSameRotation(t *testing.T) {
	q := NewQuaternionFromAxisAngle(1, 2, 3, 0.7)
	assert.True(t, q.SameRotation(q.Negated(), tolerance))
	assert.True(t, q.SameRotation(q.Scale(3), tolerance))
	assert.False(t, q.SameRotation(NewQuaternionIdentity(), tolerance))
}

func TestAxisAngleRoundTrip(t *testing.T) {
	q := NewQuaternionFromAxisAngle(0, 3, 4, 1.2)
	axis, angle := q.AxisAngle()
	assertVector(t, NewVector(0, 0.6, 0.8), axis)
	assert.InDelta(t, 1.2, angle, 1e-4)

	axis, angle = NewQuaternionIdentity().AxisAngle()
	assert.Equal(t, WorldRight, axis)
	assert.Equal(t, float32(0), angle)
}

func TestAngleBetween(t *testing.T) {
	a := NewQuaternionIdentity()
	b := NewQuaternionFromAxisAngle(0, 0, 1, math32.Pi/3)
	assert.InDelta(t, math32.Pi/3, a.Angle(b), 1e-4)
	assert.InDelta(t, math32.Pi/3, a.Angle(b.Negated()), 1e-4)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1.000, 2.000, 3.000, 4.000)", NewQuaternion(1, 2, 3, 4).String())
	assert.Equal(t, "(0.707, 0.000, 0.707, 0.000)", NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2).String())
	assert.Equal(t, "(-7.50, 7.50, 7.50, 7.50)", NewQuaternion(-7.5, 7.5, 7.5, 7.5).Format(2))
}

func TestQuaternionsAreValues(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	original := q
	_ = q.Normalize()
	_ = q.Mult(NewQuaternion(5, 6, 7, 8))
	_ = q.Inverse()
	_ = q.Slerp(NewQuaternionIdentity(), 0.5)
	require.Equal(t, original, q)
}

func BenchmarkMult(b *testing.B) {
	q1 := NewQuaternionFromAxisAngle(1, 0, 0, 0.3)
	q2 := NewQuaternionFromAxisAngle(0, 1, 0, 0.6)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q1 = q1.Mult(q2)
	}
}
