// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	// ErrDecodeFailure wraps any error raised while turning encoded bytes into a Buffer.
	ErrDecodeFailure = errors.New("decode failure")
	// ErrInvalidBuffer indicates a Buffer with no channels, mismatched channel
	// lengths or a non-positive sample rate.
	ErrInvalidBuffer = errors.New("invalid sample buffer")
	ErrInvalidBlockSize = errors.New("block size must be positive")
)
