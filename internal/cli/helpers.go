package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/solarlune/quat"
	"github.com/solarlune/quat/math32"
)

// errWriter remembers the first write error, so a run of prints can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func validatePrecision(precision int) error {
	if precision < 0 || precision > 9 {
		return fmt.Errorf("precision must be between 0 and 9, got %d", precision)
	}
	return nil
}

func quaternionFromFlag(name string, values []float32) (quat.Quaternion, error) {
	if len(values) != 4 {
		return quat.Quaternion{}, fmt.Errorf("--%s needs 4 comma-separated values (w,x,y,z), got %d", name, len(values))
	}
	return quat.NewQuaternion(values[0], values[1], values[2], values[3]), nil
}

func vectorFromFlag(name string, values []float32) (quat.Vector, error) {
	if len(values) != 3 {
		return quat.Vector{}, fmt.Errorf("--%s needs 3 comma-separated values (x,y,z), got %d", name, len(values))
	}
	return quat.NewVector(values[0], values[1], values[2]), nil
}

func angleFromFlag(angle float32, degrees bool) float32 {
	if degrees {
		return math32.ToRadians(angle)
	}
	return angle
}
