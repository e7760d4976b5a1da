package cli

import (
	"io"

	"github.com/solarlune/quat"
	"github.com/solarlune/quat/math32"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DemoOptions prints a walkthrough of the quaternion operations using fixed example values.
type DemoOptions struct {
	Precision int

	Out io.Writer
}

func NewCmdDemo(v *viper.Viper, out io.Writer) *cobra.Command {
	o := &DemoOptions{Out: out}

	return &cobra.Command{
		Use:   "demo",
		Short: "Print worked examples of quaternion arithmetic, rotation, and interpolation",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			o.Precision = v.GetInt(keyPrecision)
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}
}

func (o *DemoOptions) Validate() error {
	return validatePrecision(o.Precision)
}

func (o *DemoOptions) Run() error {

	p := o.Precision
	w := &errWriter{w: o.Out}

	w.printf("=== Quaternion Math Examples ===\n\n")

	w.printf("1. Basic Operations:\n")
	q1 := quat.NewQuaternion(1, 2, 3, 4)
	q2 := quat.NewQuaternion(2, 1, 0.5, 1.5)
	w.printf("q1 = %s\n", q1.Format(p))
	w.printf("q2 = %s\n", q2.Format(p))
	w.printf("q1 + q2 = %s\n", q1.Add(q2).Format(p))
	w.printf("q1 * q2 = %s\n", q1.Mult(q2).Format(p))
	w.printf("Magnitude of q1: %.*f\n", p, q1.Magnitude())
	w.printf("Normalized q1 = %s\n\n", q1.Normalize().Format(p))

	w.printf("2. Rotation Example:\n")
	rotation := quat.NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2)
	w.printf("90° rotation around Y-axis: %s\n", rotation.Format(p))
	w.printf("Vector (1, 0, 0) rotated: %s\n", rotation.RotateVector(quat.WorldRight).Format(p))
	w.printf("Rotation matrix:\n%s\n\n", indent(rotation.ToMatrix3().Format(p)))

	w.printf("3. Spherical Linear Interpolation (SLERP):\n")
	start := quat.NewQuaternionIdentity()
	end := quat.NewQuaternionFromAxisAngle(0, 0, 1, math32.Pi)
	w.printf("Start rotation: %s\n", start.Format(p))
	w.printf("End rotation: %s\n", end.Format(p))
	for i := 0; i <= 4; i++ {
		t := float32(i) * 0.25
		w.printf("t = %.2f: %s\n", t, start.Slerp(end, t).Format(p))
	}
	w.printf("\n")

	w.printf("4. Combining Rotations:\n")
	rotX := quat.NewQuaternionFromAxisAngle(1, 0, 0, math32.Pi/4)
	rotY := quat.NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/6)
	w.printf("45° rotation around X: %s\n", rotX.Format(p))
	w.printf("30° rotation around Y: %s\n", rotY.Format(p))
	w.printf("Combined rotation (X, then Y): %s\n", rotY.Mult(rotX).Format(p))

	return w.err

}
