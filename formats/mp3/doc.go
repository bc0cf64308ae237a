// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. go-mp3 always decodes to
// 16-bit stereo, so every Source from this package reports two channels,
// mono files included, at the file's sample rate:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//		return err // wraps ErrInvalidStream
//	}
//	defer src.Close()
//
// Samples come out interleaved as float32 in [-1,1].
package mp3
