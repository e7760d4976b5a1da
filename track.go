package quat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// ErrEmptyTrack is returned when sampling a Track that has no Keyframes.
var ErrEmptyTrack = errors.New("track has no keyframes")

// Interpolation indicates how a Track moves between two of its Keyframes.
type Interpolation int

const (
	// InterpolationSlerp spherically interpolates between Keyframes (see Quaternion.Slerp()).
	InterpolationSlerp Interpolation = iota
	// InterpolationStep holds the earlier Keyframe's rotation until the next Keyframe is reached.
	InterpolationStep
)

func (interp Interpolation) String() string {
	switch interp {
	case InterpolationSlerp:
		return "slerp"
	case InterpolationStep:
		return "step"
	}
	return fmt.Sprintf("Interpolation(%d)", int(interp))
}

// Keyframe is a rotation at a specific point in time, in seconds.
type Keyframe struct {
	Time     float32
	Rotation Quaternion
}

// Track is a sequence of rotation Keyframes, ordered by time.
type Track struct {
	Name          string
	Keyframes     []Keyframe
	Interpolation Interpolation
	// Easing remaps the progress between each pair of Keyframes. A nil Easing is linear.
	Easing ease.TweenFunc
}

// NewTrack returns a new, empty Track with linear slerping between Keyframes.
func NewTrack(name string) *Track {
	return &Track{
		Name:      name,
		Keyframes: []Keyframe{},
		Easing:    ease.Linear,
	}
}

// AddKeyframe adds a Keyframe with the given rotation at the given time, keeping the Track ordered by time.
// A Keyframe added at the same time as an existing one is placed after it.
func (track *Track) AddKeyframe(time float32, rotation Quaternion) {
	i := sort.Search(len(track.Keyframes), func(i int) bool { return track.Keyframes[i].Time > time })
	track.Keyframes = append(track.Keyframes, Keyframe{})
	copy(track.Keyframes[i+1:], track.Keyframes[i:])
	track.Keyframes[i] = Keyframe{Time: time, Rotation: rotation}
}

// Length returns the time of the last Keyframe in the Track, or 0 if it's empty.
func (track *Track) Length() float32 {
	if len(track.Keyframes) == 0 {
		return 0
	}
	return track.Keyframes[len(track.Keyframes)-1].Time
}

// ValueAt returns the Track's rotation at the time given. Times before the first Keyframe or after the last
// are clamped to those Keyframes.
func (track *Track) ValueAt(time float32) (Quaternion, error) {

	if len(track.Keyframes) == 0 {
		return Quaternion{}, fmt.Errorf("sampling %q: %w", track.Name, ErrEmptyTrack)
	}

	if first := track.Keyframes[0]; time <= first.Time {
		return first.Rotation, nil
	} else if last := track.Keyframes[len(track.Keyframes)-1]; time >= last.Time {
		return last.Rotation, nil
	}

	// The first Keyframe after the time given; it exists and is never the first Keyframe, given the checks above.
	i := sort.Search(len(track.Keyframes), func(i int) bool { return track.Keyframes[i].Time > time })
	first := track.Keyframes[i-1]
	last := track.Keyframes[i]

	if time == first.Time || track.Interpolation == InterpolationStep {
		return first.Rotation, nil
	}

	t := (time - first.Time) / (last.Time - first.Time)

	if track.Easing != nil {
		t = track.Easing(t, 0, 1, 1)
	}

	return first.Rotation.Slerp(last.Rotation, t), nil

}
