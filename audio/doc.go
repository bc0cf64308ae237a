// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and decoding plumbing shared by
// the cue detector, the playlist and the mixer.
//
// # Source and Decoder
//
// Format decoders (see the formats/ subpackages) turn an io.Reader into a
// Source, a stream of interleaved float32 samples in [-1,1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// A Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.ForPath("track.wav")
//
// # Buffer
//
// Decode drains a Source into a Buffer, the immutable planar representation
// every analysis step works on:
//
//	buf, err := audio.Decode(dec, file)
//	if errors.Is(err, audio.ErrDecodeFailure) {
//	    // malformed or unsupported data
//	}
//
// Block(k, size, dir) exposes fixed-size blocks counted from either end of the
// buffer without copying, so a single decode serves both a forward and a
// reverse scan.
//
// # Resampling
//
// ResampleBuffer converts a Buffer to another rate using Catmull-Rom cubic
// interpolation (utils.CubicInterpolate), with a one-pole low-pass when
// downsampling.
package audio
