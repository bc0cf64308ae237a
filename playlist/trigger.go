// SPDX-License-Identifier: EPL-2.0

package playlist

// Trigger records whether a track has been started for the current approach
// to its predecessor's Next cue.
type Trigger int

const (
	Armed Trigger = iota
	Fired
)

func (t Trigger) String() string {
	switch t {
	case Armed:
		return "armed"
	case Fired:
		return "fired"
	}
	return "unknown"
}

// Next applies one tick. untilNext is the predecessor's time left until its
// Next cue, fadeIn the follower's fade-in length. fire reports that the
// follower must start now.
//
// A fired trigger re-arms only once the predecessor is strictly further than
// fadeIn from its Next cue, so holding the predecessor exactly on the trigger
// point starts the follower once.
func (t Trigger) Next(untilNext, fadeIn float64) (next Trigger, fire bool) {
	switch t {
	case Fired:
		if untilNext > fadeIn {
			return Armed, false
		}
	case Armed:
		if untilNext <= fadeIn {
			return Fired, true
		}
	}
	return t, false
}
