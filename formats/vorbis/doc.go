// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float32, so samples are passed through
// unchanged, interleaved, at the stream's own channel count and rate:
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//		return err // wraps ErrInvalidStream
//	}
//	buf, err := audio.Collect(src)
//
// ReadSamples only ever returns whole frames; a dst shorter than one frame
// reads nothing.
package vorbis
