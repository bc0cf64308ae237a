// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files with
// github.com/go-audio/wav.
//
// Decoding accepts 16, 24 and 32-bit PCM with any channel count and sample
// rate. Extra chunks (LIST, fact, ...) are skipped by go-audio:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
// Samples come out interleaved as float32 in [-1,1].
//
// Encode writes a planar audio.Buffer back out as 16 or 24-bit PCM. The
// writer must be seekable because the RIFF sizes are patched on close:
//
//	out, _ := os.Create("mix.wav")
//	defer out.Close()
//	err := wav.Encode(out, buf, 16)
//
// Errors:
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrUnsupportedWavLayout: missing or broken fmt chunk
//   - ErrUnsupportedFormat: compressed or floating point data
//   - ErrUnsupportedBitDepth: not 16, 24 or 32 bits (16 or 24 for Encode)
package wav
