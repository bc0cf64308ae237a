// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input lacks a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrUnsupportedWavLayout indicates a WAV file without a usable fmt chunk.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrUnsupportedFormat indicates a compressed or floating point WAV.
	ErrUnsupportedFormat = errors.New("only integer PCM WAV is supported")
	// ErrUnsupportedBitDepth indicates a sample width other than 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
