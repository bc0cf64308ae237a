// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF stores big-endian integer PCM; 16, 24 and 32-bit samples are
// supported with any channel count and sample rate. AIFF-C (compressed) is
// not.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	buf, err := audio.Collect(src)
//
// Samples come out interleaved as float32 in [-1,1].
//
// go-audio needs to seek. Readers that are not an io.ReadSeeker are read
// into memory first.
//
// Errors:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: not 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: missing COMM data
package aiff
