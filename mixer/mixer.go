// SPDX-License-Identifier: EPL-2.0

// Package mixer is a software output stage: it plays any number of voices
// and sums them, each scaled by its own gain, into planar float32 frames.
package mixer

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ik5/cuemix/audio"
)

// ErrInvalidFormat indicates a non-positive mixer rate or channel count.
var ErrInvalidFormat = errors.New("invalid mixer format")

// Mixer renders the sum of its voices at a fixed rate and channel count.
type Mixer struct {
	rate     int
	channels int

	mu     sync.Mutex
	voices []*Voice
}

func New(sampleRate, channels int) (*Mixer, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%d Hz, %d channels: %w", sampleRate, channels, ErrInvalidFormat)
	}
	return &Mixer{rate: sampleRate, channels: channels}, nil
}

func (m *Mixer) SampleRate() int { return m.rate }
func (m *Mixer) Channels() int   { return m.channels }

// NewVoice converts buf to the mixer format and adds a paused voice for it.
func (m *Mixer) NewVoice(buf *audio.Buffer) (*Voice, error) {
	if buf == nil {
		return nil, audio.ErrInvalidBuffer
	}

	rs, err := audio.ResampleBuffer(buf, m.rate)
	if err != nil {
		return nil, fmt.Errorf("voice: %w", err)
	}

	v := &Voice{
		rate: m.rate,
		data: mapChannels(rs, m.channels),
		gain: 1,
	}

	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
	return v, nil
}

// Render mixes the next frames frames of every playing voice and advances
// them. The result is planar and may exceed [-1, 1].
func (m *Mixer) Render(frames int) [][]float32 {
	out := make([][]float32, m.channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voices {
		v.mixInto(out)
	}
	return out
}

// Active reports whether any voice is playing.
func (m *Mixer) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voices {
		if v.Playing() {
			return true
		}
	}
	return false
}

// mapChannels returns n planar channels for buf. Mono is copied to every
// output; when buf has more channels than n, channel i is averaged into
// output i%n; otherwise outputs repeat the source channels in order.
func mapChannels(buf *audio.Buffer, n int) [][]float32 {
	src := buf.Channels()
	frames := buf.Frames()

	out := make([][]float32, n)
	if src <= n {
		for c := range out {
			out[c] = buf.Channel(c % src)
		}
		return out
	}

	counts := make([]float32, n)
	for c := range out {
		out[c] = make([]float32, frames)
	}
	for i := range src {
		c := i % n
		counts[c]++
		for f, s := range buf.Channel(i) {
			out[c][f] += s
		}
	}
	for c := range out {
		for f := range out[c] {
			out[c][f] /= counts[c]
		}
	}
	return out
}

// Voice is one playing buffer. It implements playlist.Player; all methods
// are safe for concurrent use with Mixer.Render.
type Voice struct {
	rate int
	data [][]float32

	mu      sync.Mutex
	pos     int
	gain    float64
	playing bool
}

// Play seeks to from seconds and starts the voice. Positions outside the
// buffer are clamped; playing from the end stops immediately.
func (v *Voice) Play(from float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	frames := len(v.data[0])
	v.pos = min(frames, max(0, int(math.Round(from*float64(v.rate)))))
	v.playing = v.pos < frames
}

func (v *Voice) Pause() {
	v.mu.Lock()
	v.playing = false
	v.mu.Unlock()
}

// Position returns the playback position in seconds.
func (v *Voice) Position() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.pos) / float64(v.rate)
}

func (v *Voice) SetGain(gain float64) {
	v.mu.Lock()
	v.gain = gain
	v.mu.Unlock()
}

func (v *Voice) Gain() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gain
}

func (v *Voice) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

func (v *Voice) mixInto(out [][]float32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.playing {
		return
	}

	n := min(len(out[0]), len(v.data[0])-v.pos)
	g := float32(v.gain)
	if g != 0 {
		for c := range out {
			src := v.data[c][v.pos : v.pos+n]
			dst := out[c][:n]
			for i, s := range src {
				dst[i] += s * g
			}
		}
	}

	v.pos += n
	if v.pos >= len(v.data[0]) {
		v.playing = false
	}
}
