package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/solarlune/quat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var trackExample = `# sample a YAML keyframe file 9 times from start to end
%[1]s track spin.yaml --steps 9

# list node rotations and sample every rotation animation in a glTF file
%[1]s track robot.glb
`

// TrackOptions loads rotation tracks from a YAML keyframe file or a glTF file and prints samples across each.
type TrackOptions struct {
	Path      string
	Steps     int
	Easing    string
	Precision int

	Out io.Writer

	library *quat.Library
}

func NewCmdTrack(v *viper.Viper, out io.Writer) *cobra.Command {
	o := &TrackOptions{Out: out}

	cmd := &cobra.Command{
		Use:     "track FILE",
		Short:   "Sample rotation tracks from a YAML keyframe file or a glTF file",
		Example: fmt.Sprintf(trackExample, "quat"),
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			o.Path = args[0]
			o.Steps = v.GetInt(keySteps)
			o.Precision = v.GetInt(keyPrecision)
			o.Easing = v.GetString(keyEasing)
			if err := o.Validate(); err != nil {
				return err
			}
			if err := o.Complete(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().Int(keySteps, 5, "number of samples to print per track, including both ends.")
	cmd.Flags().String(keyEasing, "", fmt.Sprintf("override the easing of every track. One of: %s.", strings.Join(quat.EasingNames(), ", ")))
	return cmd
}

func (o *TrackOptions) Validate() error {
	if o.Steps < 2 {
		return errors.New("--steps must be at least 2")
	}
	if o.Easing != "" {
		if _, err := quat.EasingByName(o.Easing); err != nil {
			return err
		}
	}
	return validatePrecision(o.Precision)
}

// Complete loads the file, picking the format from its extension.
func (o *TrackOptions) Complete() error {

	switch strings.ToLower(filepath.Ext(o.Path)) {

	case ".gltf", ".glb":
		library, err := quat.LoadGLTFFile(o.Path)
		if err != nil {
			return err
		}
		o.library = library

	default:
		track, err := quat.LoadTrackYAMLFile(o.Path)
		if err != nil {
			return err
		}
		o.library = quat.NewLibrary()
		o.library.AddTrack(track)

	}

	if o.Easing != "" {
		easing, _ := quat.EasingByName(o.Easing)
		for _, track := range o.library.Tracks {
			track.Easing = easing
		}
	}

	if klog.V(5).Enabled() {
		klog.Infof("loaded %s:\n%s", o.Path, spew.Sdump(o.library))
	}

	return nil

}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *TrackOptions) Run() error {

	p := o.Precision
	w := &errWriter{w: o.Out}

	for _, name := range sortedKeys(o.library.Nodes) {
		w.printf("node %s: %s\n", name, o.library.Nodes[name].Format(p))
	}

	for _, name := range sortedKeys(o.library.Tracks) {

		track := o.library.Tracks[name]
		length := track.Length()
		w.printf("track %s (%d keyframes, %.2fs, %s):\n", name, len(track.Keyframes), length, track.Interpolation)

		for i := 0; i < o.Steps; i++ {
			time := length * float32(i) / float32(o.Steps-1)
			q, err := track.ValueAt(time)
			if err != nil {
				return err
			}
			w.printf("  %.2fs: %s\n", time, q.Format(p))
		}

	}

	return w.err

}
