// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic signals for tests. It returns plain
// slices and a Source-shaped mock so that package audio can use it without
// an import cycle.
package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	// ReadErr, when set, is returned by the first ReadSamples call.
	ReadErr error
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// Amplitude converts a dBFS level to the linear amplitude of a constant
// signal with that RMS.
func Amplitude(db float64) float32 {
	return float32(math.Pow(10, db/20))
}

// Constant returns channels x frames planar samples all equal to value.
func Constant(channels, frames int, value float32) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for i := range out[c] {
			out[c][i] = value
		}
	}
	return out
}

// Silence returns seconds of digital silence.
func Silence(rate, channels int, seconds float64) [][]float32 {
	return Constant(channels, int(seconds*float64(rate)), 0)
}

// Level returns seconds of a constant signal whose RMS is db dBFS.
func Level(rate, channels int, seconds, db float64) [][]float32 {
	return Constant(channels, int(seconds*float64(rate)), Amplitude(db))
}

// Sine returns seconds of a sine tone at freq Hz with peak amplitude amp.
func Sine(rate, channels int, seconds, freq float64, amp float32) [][]float32 {
	frames := int(seconds * float64(rate))
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for i := range out[c] {
			out[c][i] = amp * float32(math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		}
	}
	return out
}

// Concat joins planar segments with equal channel counts end to end.
func Concat(segments ...[][]float32) [][]float32 {
	if len(segments) == 0 {
		return nil
	}
	out := make([][]float32, len(segments[0]))
	for _, seg := range segments {
		for c := range out {
			out[c] = append(out[c], seg[c]...)
		}
	}
	return out
}
