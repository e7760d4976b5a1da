package cli

import (
	"fmt"
	"io"

	"github.com/solarlune/quat"
	"github.com/solarlune/quat/math32"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rotateExample = `# rotate +X a quarter turn around +Y
%[1]s rotate --axis 0,1,0 --angle 90 --degrees --vector 1,0,0
`

type RotateFlags struct {
	Axis    []float32
	Angle   float32
	Degrees bool
	Vector  []float32
}

func (f *RotateFlags) ToOptions(precision int, out io.Writer) (*RotateOptions, error) {

	axis, err := vectorFromFlag("axis", f.Axis)
	if err != nil {
		return nil, err
	}

	vec, err := vectorFromFlag("vector", f.Vector)
	if err != nil {
		return nil, err
	}

	return &RotateOptions{
		Rotation:  quat.NewQuaternionFromAxisAngleVector(axis, angleFromFlag(f.Angle, f.Degrees)),
		Vector:    vec,
		Precision: precision,
		Out:       out,
	}, nil

}

// RotateOptions rotates a single vector, printing the rotation as a quaternion and a matrix alongside the result.
type RotateOptions struct {
	Rotation  quat.Quaternion
	Vector    quat.Vector
	Precision int

	Out io.Writer
}

func NewCmdRotate(v *viper.Viper, out io.Writer) *cobra.Command {
	flags := &RotateFlags{Axis: []float32{0, 1, 0}, Vector: []float32{1, 0, 0}}

	cmd := &cobra.Command{
		Use:     "rotate --axis x,y,z --angle A --vector x,y,z",
		Short:   "Rotate a vector around an axis",
		Example: fmt.Sprintf(rotateExample, "quat"),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			o, err := flags.ToOptions(v.GetInt(keyPrecision), out)
			if err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Float32SliceVar(&flags.Axis, "axis", flags.Axis, "rotation axis; normalized before use.")
	cmd.Flags().Float32Var(&flags.Angle, "angle", flags.Angle, "rotation angle, in radians unless --degrees is set.")
	cmd.Flags().BoolVar(&flags.Degrees, "degrees", flags.Degrees, "interpret --angle in degrees.")
	cmd.Flags().Float32SliceVar(&flags.Vector, "vector", flags.Vector, "vector to rotate.")
	return cmd
}

func (o *RotateOptions) Validate() error {
	return validatePrecision(o.Precision)
}

func (o *RotateOptions) Run() error {
	p := o.Precision
	w := &errWriter{w: o.Out}
	w.printf("Rotation: %s\n", o.Rotation.Format(p))
	axis, angle := o.Rotation.AxisAngle()
	w.printf("Axis %s, angle %.*f°\n", axis.Format(p), p, math32.ToDegrees(angle))
	w.printf("Vector %s rotated: %s\n", o.Vector.Format(p), o.Rotation.RotateVector(o.Vector).Format(p))
	w.printf("Rotation matrix:\n%s\n", indent(o.Rotation.ToMatrix3().Format(p)))
	return w.err
}
