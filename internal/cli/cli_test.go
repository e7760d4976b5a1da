package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCommand(&out, &errOut)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo")
	require.NoError(t, err)

	for _, line := range []string{
		"=== Quaternion Math Examples ===",
		"q1 + q2 = (3.000, 3.000, 3.500, 5.500)",
		"q1 * q2 = (-7.500, 7.500, 7.500, 7.500)",
		"Magnitude of q1: 5.477",
		"Normalized q1 = (0.183, 0.365, 0.548, 0.730)",
		"90° rotation around Y-axis: (0.707, 0.000, 0.707, 0.000)",
		"t = 0.00: (1.000, 0.000, 0.000, 0.000)",
		"45° rotation around X: (0.924, 0.383, 0.000, 0.000)",
	} {
		assert.Contains(t, out, line)
	}
}

func TestMultiply(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		env      string
		expected string
	}{
		{
			name:     "default precision",
			args:     []string{"multiply", "--a", "1,2,3,4", "--b", "2,1,0.5,1.5"},
			expected: "a * b = (-7.500, 7.500, 7.500, 7.500)",
		},
		{
			name:     "precision flag",
			args:     []string{"multiply", "--precision", "1", "--a", "1,2,3,4", "--b", "2,1,0.5,1.5"},
			expected: "a * b = (-7.5, 7.5, 7.5, 7.5)",
		},
		{
			name:     "precision from the environment",
			args:     []string{"multiply", "--a", "1,2,3,4", "--b", "2,1,0.5,1.5"},
			env:      "2",
			expected: "a * b = (-7.50, 7.50, 7.50, 7.50)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.env != "" {
				t.Setenv("QUAT_PRECISION", tc.env)
			}
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.expected)
		})
	}
}

func TestMultiplyNeedsFourComponents(t *testing.T) {
	_, err := run(t, "", "multiply", "--a", "1,2,3", "--b", "1,0,0,0")
	assert.ErrorContains(t, err, "--a needs 4")
}

func TestRotate(t *testing.T) {
	out, err := run(t, "", "rotate", "--axis", "0,0,1", "--angle", "90", "--degrees", "--vector", "1,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "Rotation: (0.707, 0.000, 0.000, 0.707)")
	assert.Contains(t, out, "Axis (0.000, 0.000, 1.000), angle 90.000°")
	assert.Contains(t, out, "Rotation matrix:\n")
}

func TestSlerp(t *testing.T) {
	out, err := run(t, "", "slerp", "--from", "1,0,0,0", "--to", "0,0,0,1", "--steps", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "t = 0.50: (0.707, 0.000, 0.000, 0.707)")

	_, err = run(t, "", "slerp", "--to", "0,0,0,1", "--steps", "1")
	assert.ErrorContains(t, err, "--steps")
}

func TestTrackYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: spin
keyframes:
  - time: 0
    rotation: [1, 0, 0, 0]
  - time: 2
    axis: [0, 0, 1]
    angle: 1.5707964
`), 0o644))

	out, err := run(t, "", "track", path, "--steps", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "track spin (2 keyframes, 2.00s, slerp):")
	assert.Contains(t, out, "  1.00s: (0.924, 0.000, 0.000, 0.383)")

	_, err = run(t, "", "track", path, "--easing", "wobbly")
	assert.Error(t, err)
}

func TestTrackMissingFile(t *testing.T) {
	_, err := run(t, "", "track", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCRC(t *testing.T) {
	out, err := run(t, "", "crc", "123456789", "A")
	require.NoError(t, err)
	assert.Equal(t, "0x29B1  123456789\n0xB915  A\n", out)

	out, err = run(t, "123456789", "crc")
	require.NoError(t, err)
	assert.Equal(t, "0x29B1\n", out)
}
