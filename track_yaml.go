package quat

import (
	"errors"
	"fmt"
	"os"

	"github.com/solarlune/quat/math32"
	"sigs.k8s.io/yaml"
)

// ErrInvalidKeyframe is returned when a keyframe in a track file is malformed.
var ErrInvalidKeyframe = errors.New("invalid keyframe")

// trackFile is the on-disk layout of a Track. For example:
//
//	name: spin
//	easing: inOutQuad
//	keyframes:
//	  - time: 0
//	    rotation: [1, 0, 0, 0]
//	  - time: 2
//	    axis: [0, 0, 1]
//	    angle: 180
//	    degrees: true
type trackFile struct {
	Name          string         `json:"name"`
	Easing        string         `json:"easing,omitempty"`
	Interpolation string         `json:"interpolation,omitempty"`
	Keyframes     []keyframeFile `json:"keyframes"`
}

type keyframeFile struct {
	Time     float32   `json:"time"`
	Rotation []float32 `json:"rotation,omitempty"` // w, x, y, z
	Axis     []float32 `json:"axis,omitempty"`
	Angle    float32   `json:"angle,omitempty"`
	Degrees  bool      `json:"degrees,omitempty"`
}

func (kf keyframeFile) quaternion() (Quaternion, error) {

	switch {

	case kf.Rotation != nil && kf.Axis != nil:
		return Quaternion{}, fmt.Errorf("keyframe at %v has both rotation and axis: %w", kf.Time, ErrInvalidKeyframe)

	case kf.Rotation != nil:
		if len(kf.Rotation) != 4 {
			return Quaternion{}, fmt.Errorf("keyframe at %v: rotation needs 4 components, got %d: %w", kf.Time, len(kf.Rotation), ErrInvalidKeyframe)
		}
		return NewQuaternion(kf.Rotation[0], kf.Rotation[1], kf.Rotation[2], kf.Rotation[3]), nil

	case kf.Axis != nil:
		if len(kf.Axis) != 3 {
			return Quaternion{}, fmt.Errorf("keyframe at %v: axis needs 3 components, got %d: %w", kf.Time, len(kf.Axis), ErrInvalidKeyframe)
		}
		angle := kf.Angle
		if kf.Degrees {
			angle = math32.ToRadians(angle)
		}
		return NewQuaternionFromAxisAngle(kf.Axis[0], kf.Axis[1], kf.Axis[2], angle), nil

	}

	return Quaternion{}, fmt.Errorf("keyframe at %v needs a rotation or an axis: %w", kf.Time, ErrInvalidKeyframe)

}

// LoadTrackYAML parses a Track from YAML (or JSON) data.
func LoadTrackYAML(data []byte) (*Track, error) {

	var file trackFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parsing track: %w", err)
	}

	track := NewTrack(file.Name)

	easing, err := EasingByName(file.Easing)
	if err != nil {
		return nil, err
	}
	track.Easing = easing

	switch file.Interpolation {
	case "", "slerp":
		track.Interpolation = InterpolationSlerp
	case "step":
		track.Interpolation = InterpolationStep
	default:
		return nil, fmt.Errorf("unknown interpolation %q", file.Interpolation)
	}

	for _, kf := range file.Keyframes {
		q, err := kf.quaternion()
		if err != nil {
			return nil, err
		}
		track.AddKeyframe(kf.Time, q)
	}

	return track, nil

}

// LoadTrackYAMLFile parses a Track from the YAML file at the path given.
func LoadTrackYAMLFile(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadTrackYAML(data)
}
