// SPDX-License-Identifier: EPL-2.0

// Package fade turns cue points into a gain curve over playback time.
package fade

import "github.com/ik5/cuemix/cue"

// Curve maps a playback position in seconds to a gain in [0, 1]. It is the
// product of a fade-in ramp from Begin to Start and a fade-out ramp from Next
// to End. A ramp whose endpoints coincide is a step.
type Curve struct {
	p cue.Points
}

// New builds the curve for p. p is expected to satisfy p.Validate.
func New(p cue.Points) Curve {
	return Curve{p: p}
}

// Points returns the cue points the curve was built from.
func (c Curve) Points() cue.Points { return c.p }

// Gain returns the gain at t seconds.
func (c Curve) Gain(t float64) float64 {
	return c.in(t) * c.out(t)
}

// FadeIn is the fade-in length in seconds.
func (c Curve) FadeIn() float64 { return c.p.FadeIn() }

// FadeOut is the fade-out length in seconds.
func (c Curve) FadeOut() float64 { return c.p.FadeOut() }

func (c Curve) in(t float64) float64 {
	if c.p.Start == c.p.Begin {
		if t < c.p.Begin {
			return 0
		}
		return 1
	}
	return clamp((t - c.p.Begin) / (c.p.Start - c.p.Begin))
}

func (c Curve) out(t float64) float64 {
	if c.p.Next == c.p.End {
		if t > c.p.End {
			return 0
		}
		return 1
	}
	return clamp((c.p.End - t) / (c.p.End - c.p.Next))
}

func clamp(v float64) float64 {
	return min(1, max(0, v))
}
