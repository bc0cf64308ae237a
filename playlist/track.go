// SPDX-License-Identifier: EPL-2.0

package playlist

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/cue"
	"github.com/ik5/cuemix/fade"
)

// Player is the playback primitive behind a track.
type Player interface {
	// Play seeks to from seconds and starts playing.
	Play(from float64)
	Pause()
	// Position is the current playback position in seconds.
	Position() float64
	SetGain(gain float64)
}

// Step is what a track reports to its successor after a tick.
type Step struct {
	Position float64
	Cue      cue.Points
}

// Track is one playlist entry: a decoded buffer, its cue points and the
// player that renders it.
type Track struct {
	ID     uuid.UUID
	Name   string
	Buffer *audio.Buffer
	Cue    cue.Points

	curve  fade.Curve
	player Player

	mu      sync.Mutex
	trigger Trigger
}

// NewTrack validates p against the buffer duration and wraps it.
func NewTrack(name string, buf *audio.Buffer, p cue.Points, player Player) (*Track, error) {
	if buf == nil {
		return nil, fmt.Errorf("track %q: %w", name, audio.ErrInvalidBuffer)
	}
	if player == nil {
		return nil, fmt.Errorf("track %q: %w", name, ErrNilPlayer)
	}
	if err := p.Validate(buf.Duration()); err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}

	return &Track{
		ID:     uuid.New(),
		Name:   name,
		Buffer: buf,
		Cue:    p,
		curve:  fade.New(p),
		player: player,
	}, nil
}

// NameFromPath derives a display name from a file path.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Play starts playback at the given position in seconds.
func (t *Track) Play(at float64) {
	t.player.Play(at)
}

// PlayCue starts playback at the named cue.
func (t *Track) PlayCue(n cue.Name) error {
	at, err := t.Cue.At(n)
	if err != nil {
		return err
	}
	t.player.Play(at)
	return nil
}

func (t *Track) Pause() {
	t.player.Pause()
}

func (t *Track) Position() float64 {
	return t.player.Position()
}

// Curve returns the track's gain curve.
func (t *Track) Curve() fade.Curve { return t.curve }

// Trigger returns the current trigger state.
func (t *Track) Trigger() Trigger {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.trigger
}

func (t *Track) rearm() {
	t.mu.Lock()
	t.trigger = Armed
	t.mu.Unlock()
}

// Tick advances the track by one scheduling step. prev is the predecessor's
// step of the same pass, nil for the first track. Tick starts the track from
// Begin when the predecessor reaches the trigger point and sets the player
// gain from the curve.
func (t *Track) Tick(prev *Step) Step {
	s, _ := t.tick(prev)
	return s
}

func (t *Track) tick(prev *Step) (Step, bool) {
	var fire bool
	if prev != nil {
		t.mu.Lock()
		t.trigger, fire = t.trigger.Next(prev.Cue.Next-prev.Position, t.curve.FadeIn())
		t.mu.Unlock()

		if fire {
			t.player.Play(t.Cue.Begin)
		}
	}

	pos := t.player.Position()
	t.player.SetGain(t.curve.Gain(pos))

	return Step{Position: pos, Cue: t.Cue}, fire
}
