// SPDX-License-Identifier: EPL-2.0

package cue

import (
	"fmt"
	"strings"
)

// Name identifies one of the four cue points.
type Name string

const (
	Begin Name = "begin"
	Start Name = "start"
	Next  Name = "next"
	End   Name = "end"
)

// Names lists the cue points in playback order.
var Names = []Name{Begin, Start, Next, End}

// ParseName resolves a case-insensitive cue name.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	switch n {
	case Begin, Start, Next, End:
		return n, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownCue)
}

// Points holds the cue times of a track, in seconds from its first frame.
//
//   - Begin: fade-in starts
//   - Start: fade-in complete, the track is fully audible
//   - Next:  fade-out starts; the following track is started so that its
//     Start lines up with this point
//   - End:   fade-out complete
type Points struct {
	Begin float64 `json:"begin"`
	Start float64 `json:"start"`
	Next  float64 `json:"next"`
	End   float64 `json:"end"`
}

// At returns the time of the named cue.
func (p Points) At(n Name) (float64, error) {
	switch n {
	case Begin:
		return p.Begin, nil
	case Start:
		return p.Start, nil
	case Next:
		return p.Next, nil
	case End:
		return p.End, nil
	}
	return 0, fmt.Errorf("%q: %w", string(n), ErrUnknownCue)
}

// FadeIn is the length of the fade-in ramp.
func (p Points) FadeIn() float64 { return p.Start - p.Begin }

// FadeOut is the length of the fade-out ramp.
func (p Points) FadeOut() float64 { return p.End - p.Next }

// Validate checks 0 <= Begin <= Start <= duration and
// 0 <= Next <= End <= duration.
func (p Points) Validate(duration float64) error {
	switch {
	case p.Begin < 0:
		return fmt.Errorf("begin %.3fs is negative: %w", p.Begin, ErrInvalidCueOrdering)
	case p.Begin > p.Start:
		return fmt.Errorf("begin %.3fs after start %.3fs: %w", p.Begin, p.Start, ErrInvalidCueOrdering)
	case p.Start > duration:
		return fmt.Errorf("start %.3fs past duration %.3fs: %w", p.Start, duration, ErrInvalidCueOrdering)
	case p.Next < 0:
		return fmt.Errorf("next %.3fs is negative: %w", p.Next, ErrInvalidCueOrdering)
	case p.Next > p.End:
		return fmt.Errorf("next %.3fs after end %.3fs: %w", p.Next, p.End, ErrInvalidCueOrdering)
	case p.End > duration:
		return fmt.Errorf("end %.3fs past duration %.3fs: %w", p.End, duration, ErrInvalidCueOrdering)
	}
	return nil
}

// Finalize turns the raw scan results into cue points. start comes from the
// forward scan; rawNext from the reverse scan and is therefore measured from
// the end of the track. The fade offsets are clamped at the buffer edges, the
// resulting ordering is validated, never corrected.
func Finalize(start, rawNext, duration float64, s Settings) (Points, error) {
	rawEnd := max(0, rawNext-s.EndFade)
	p := Points{
		Begin: max(0, start-s.BeginFade),
		Start: start,
		Next:  duration - rawNext,
		End:   duration - rawEnd,
	}
	if err := p.Validate(duration); err != nil {
		return Points{}, err
	}
	return p, nil
}
