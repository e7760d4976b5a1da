package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/solarlune/quat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var slerpExample = `# interpolate from no rotation to a half turn around Z in quarter steps
%[1]s slerp --from 1,0,0,0 --to 0,0,0,1 --steps 5
`

type SlerpFlags struct {
	From []float32
	To   []float32
}

func (f *SlerpFlags) ToOptions(v *viper.Viper, out io.Writer) (*SlerpOptions, error) {
	from, err := quaternionFromFlag("from", f.From)
	if err != nil {
		return nil, err
	}
	to, err := quaternionFromFlag("to", f.To)
	if err != nil {
		return nil, err
	}
	return &SlerpOptions{
		From:      from,
		To:        to,
		Steps:     v.GetInt(keySteps),
		Precision: v.GetInt(keyPrecision),
		Out:       out,
	}, nil
}

// SlerpOptions prints Steps evenly spaced interpolations from From to To, both ends included.
type SlerpOptions struct {
	From, To  quat.Quaternion
	Steps     int
	Precision int

	Out io.Writer
}

func NewCmdSlerp(v *viper.Viper, out io.Writer) *cobra.Command {
	flags := &SlerpFlags{From: []float32{1, 0, 0, 0}}

	cmd := &cobra.Command{
		Use:     "slerp --from w,x,y,z --to w,x,y,z",
		Short:   "Spherically interpolate between two rotations",
		Example: fmt.Sprintf(slerpExample, "quat"),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			o, err := flags.ToOptions(v, out)
			if err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Float32SliceVar(&flags.From, "from", flags.From, "starting rotation, as w,x,y,z.")
	cmd.Flags().Float32SliceVar(&flags.To, "to", flags.To, "ending rotation, as w,x,y,z.")
	cmd.Flags().Int(keySteps, 5, "number of samples to print, including both ends.")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (o *SlerpOptions) Validate() error {
	if o.Steps < 2 {
		return errors.New("--steps must be at least 2")
	}
	return validatePrecision(o.Precision)
}

func (o *SlerpOptions) Run() error {
	w := &errWriter{w: o.Out}
	for i := 0; i < o.Steps; i++ {
		t := float32(i) / float32(o.Steps-1)
		w.printf("t = %.2f: %s\n", t, o.From.Slerp(o.To, t).Format(o.Precision))
	}
	return w.err
}
