package quat

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FinishMode indicates what a Player does once it reaches the end of its Track.
type FinishMode int

const (
	FinishModeLoop     FinishMode = iota // Start again from the beginning
	FinishModePingPong                   // Reverse direction and play back towards the start
	FinishModeStop                       // Stop playing, holding the last rotation
)

// Player plays back a rotation Track over time. Its playhead is driven by a gween Tween that runs from the start to the
// end of the Track (or back again, when ping-ponging).
// A Player isn't safe for concurrent use.
type Player struct {
	Track      *Track
	PlaySpeed  float32 // Multiplier for the time passed to Update(); should be positive.
	FinishMode FinishMode
	OnFinish   func() // Called each time the playhead reaches the end (or, for FinishModePingPong, the start) of the Track.
	Playing    bool

	tween    *gween.Tween
	reverse  bool
	playhead float32
	finished bool
}

// NewPlayer returns a new Player for the Track given. It starts stopped, with a FinishMode of FinishModeStop.
func NewPlayer(track *Track) *Player {
	return &Player{
		Track:      track,
		PlaySpeed:  1,
		FinishMode: FinishModeStop,
	}
}

func (player *Player) newTween() *gween.Tween {
	length := player.Track.Length()
	if length <= 0 {
		return nil
	}
	if player.reverse {
		return gween.New(length, 0, length, ease.Linear)
	}
	return gween.New(0, length, length, ease.Linear)
}

// Play starts the Player from the beginning of its Track.
func (player *Player) Play() {
	player.reverse = false
	player.playhead = 0
	player.tween = player.newTween()
	player.Playing = true
	player.finished = false
}

// Playhead returns the current time of the Player in the Track, in seconds.
func (player *Player) Playhead() float32 {
	return player.playhead
}

// Finished returns if the Player has played through to the end of its Track and stopped. A Player that has never
// been played isn't finished, and neither is one looping or ping-ponging.
func (player *Player) Finished() bool {
	return player.finished
}

// Update advances the Player by dt seconds (scaled by PlaySpeed), returning the Track's rotation at the new playhead.
func (player *Player) Update(dt float32) Quaternion {

	if player.Playing {

		if player.tween == nil {
			// Zero-length Track; there's nothing to play through.
			player.playhead = player.Track.Length()
			player.Playing = false
			player.finished = true
			if player.OnFinish != nil {
				player.OnFinish()
			}
			return player.Rotation()
		}

		playhead, finished := player.tween.Update(dt * player.PlaySpeed)
		player.playhead = playhead

		if finished {

			switch player.FinishMode {
			case FinishModeLoop:
				player.tween.Reset()
			case FinishModePingPong:
				player.reverse = !player.reverse
				player.tween = player.newTween()
			case FinishModeStop:
				player.Playing = false
				player.finished = true
			}

			if player.OnFinish != nil {
				player.OnFinish()
			}

		}

	}

	return player.Rotation()

}

// Rotation returns the Track's rotation at the current playhead. An empty Track gives the identity Quaternion.
func (player *Player) Rotation() Quaternion {
	q, err := player.Track.ValueAt(player.playhead)
	if err != nil {
		return NewQuaternionIdentity()
	}
	return q
}
