package quat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned by EasingByName for a name it doesn't recognize.
var ErrUnknownEasing = errors.New("unknown easing")

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// EasingByName returns the easing function registered under the name given (i.e. "linear", "inOutQuad", "outBounce").
// An empty name is linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	if fn, ok := easings[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownEasing, name, EasingNames())
}

// EasingNames returns the sorted names EasingByName accepts.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
