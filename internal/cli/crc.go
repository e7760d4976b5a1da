package cli

import (
	"io"

	"github.com/solarlune/quat/crc16"
	"github.com/spf13/cobra"
)

// CRCOptions prints the CRC-16/CCITT-FALSE checksum of each argument, or of stdin when there are none.
type CRCOptions struct {
	Args []string

	In  io.Reader
	Out io.Writer
}

func NewCmdCRC(out io.Writer) *cobra.Command {
	o := &CRCOptions{Out: out}

	return &cobra.Command{
		Use:   "crc [STRING...]",
		Short: "Print the CRC-16 (poly 0x1021, init 0xFFFF) of each string, or of stdin",
		RunE: func(c *cobra.Command, args []string) error {
			o.Args = args
			o.In = c.InOrStdin()
			return o.Run()
		},
	}
}

func (o *CRCOptions) Run() error {

	w := &errWriter{w: o.Out}

	if len(o.Args) == 0 {
		digest := crc16.New()
		if _, err := io.Copy(digest, o.In); err != nil {
			return err
		}
		w.printf("0x%04X\n", digest.Sum16())
		return w.err
	}

	for _, arg := range o.Args {
		w.printf("0x%04X  %s\n", crc16.Checksum([]byte(arg)), arg)
	}

	return w.err

}
