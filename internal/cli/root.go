// Package cli implements the quat command line tool.
package cli

import (
	goflag "flag"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	keyPrecision = "precision"
	keySteps     = "steps"
	keyEasing    = "easing"
)

// NewCommand returns the root quat command, writing results to out and diagnostics to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {

	v := viper.New()
	v.SetEnvPrefix("QUAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyPrecision, 3)
	v.SetDefault(keySteps, 5)

	var configFile string

	cmd := &cobra.Command{
		Use:           "quat",
		Short:         "Quaternion rotation toolkit",
		Long:          "Compose, convert, interpolate, and inspect 3D rotations expressed as quaternions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", configFile, err)
				}
				klog.V(2).Infof("using config file %s", v.ConfigFileUsed())
			}
			if err := v.BindPFlags(c.Flags()); err != nil {
				return err
			}
			klog.V(2).Infof("running %s", c.CommandPath())
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file providing defaults for precision, steps, and easing.")
	cmd.PersistentFlags().Int(keyPrecision, 3, "number of decimal digits to print.")

	cmd.AddCommand(
		NewCmdDemo(v, out),
		NewCmdRotate(v, out),
		NewCmdMultiply(v, out),
		NewCmdSlerp(v, out),
		NewCmdTrack(v, out),
		NewCmdCRC(out),
	)

	return cmd

}
