package cli

import (
	"io"

	"github.com/solarlune/quat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type MultiplyFlags struct {
	A []float32
	B []float32
}

func (f *MultiplyFlags) ToOptions(precision int, out io.Writer) (*MultiplyOptions, error) {
	a, err := quaternionFromFlag("a", f.A)
	if err != nil {
		return nil, err
	}
	b, err := quaternionFromFlag("b", f.B)
	if err != nil {
		return nil, err
	}
	return &MultiplyOptions{A: a, B: b, Precision: precision, Out: out}, nil
}

// MultiplyOptions prints the Hamilton product a * b, which as a rotation applies b first and then a.
type MultiplyOptions struct {
	A, B      quat.Quaternion
	Precision int

	Out io.Writer
}

func NewCmdMultiply(v *viper.Viper, out io.Writer) *cobra.Command {
	flags := &MultiplyFlags{}

	cmd := &cobra.Command{
		Use:   "multiply --a w,x,y,z --b w,x,y,z",
		Short: "Print the Hamilton product a * b (b is applied first)",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			o, err := flags.ToOptions(v.GetInt(keyPrecision), out)
			if err != nil {
				return err
			}
			if err := validatePrecision(o.Precision); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Float32SliceVar(&flags.A, "a", flags.A, "left operand, as w,x,y,z.")
	cmd.Flags().Float32SliceVar(&flags.B, "b", flags.B, "right operand, as w,x,y,z.")
	return cmd
}

func (o *MultiplyOptions) Run() error {
	p := o.Precision
	product := o.A.Mult(o.B)
	w := &errWriter{w: o.Out}
	w.printf("a * b = %s\n", product.Format(p))
	w.printf("|a * b| = %.*f\n", p, product.Magnitude())
	w.printf("normalized = %s\n", product.Normalize().Format(p))
	return w.err
}
