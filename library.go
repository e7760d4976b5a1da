package quat

import (
	"sort"
	"strings"
)

// Library represents a collection of named rotations and rotation Tracks, as loaded from a glTF file or gathered from
// keyframe files.
type Library struct {
	Nodes  map[string]Quaternion // A Map of node rest rotations to their names
	Tracks map[string]*Track     // A Map of Tracks to their names; tracks loaded from glTF are named "<animation>/<node>"
}

// NewLibrary creates a new, empty Library.
func NewLibrary() *Library {
	return &Library{
		Nodes:  map[string]Quaternion{},
		Tracks: map[string]*Track{},
	}
}

// AddTrack adds the Track given to the Library under its Name, replacing any Track already stored with that name.
func (lib *Library) AddTrack(track *Track) {
	lib.Tracks[track.Name] = track
}

// FindTrack returns the Track with the provided name. If a Track with the given name isn't found, FindTrack will return nil.
func (lib *Library) FindTrack(name string) *Track {
	return lib.Tracks[name]
}

// FindNode returns the rest rotation of the node with the provided name, and whether it was found.
func (lib *Library) FindNode(name string) (Quaternion, bool) {
	q, ok := lib.Nodes[name]
	return q, ok
}

// TracksForNode returns every Track animating the node with the name given, across all animations.
func (lib *Library) TracksForNode(nodeName string) []*Track {
	out := []*Track{}
	for name, track := range lib.Tracks {
		if i := strings.LastIndexByte(name, '/'); i >= 0 && name[i+1:] == nodeName {
			out = append(out, track)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
