// SPDX-License-Identifier: EPL-2.0

// Package envelope measures the loudness of sample blocks.
package envelope

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyBlock indicates a block with no channels or no samples.
	ErrEmptyBlock = errors.New("empty block")
	// ErrChannelMismatch indicates channels of different lengths in one block.
	ErrChannelMismatch = errors.New("channels differ in length")
)

// RMS returns the root mean square of samples, or 0 for an empty slice.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// ToDB converts a linear amplitude to dBFS. Zero maps to -Inf.
func ToDB(lin float64) float64 {
	return 20 * math.Log10(lin)
}

// Level returns the loudness of a planar block in dBFS: the RMS of each
// channel, combined as the RMS of those values across channels.
// A silent block yields -Inf, which compares below any threshold.
func Level(block [][]float32) (float64, error) {
	if len(block) == 0 || len(block[0]) == 0 {
		return 0, ErrEmptyBlock
	}

	frames := len(block[0])
	var sum float64
	for c, ch := range block {
		if len(ch) != frames {
			return 0, fmt.Errorf("channel %d: %d samples, want %d: %w", c, len(ch), frames, ErrChannelMismatch)
		}
		rms := RMS(ch)
		sum += rms * rms
	}

	return ToDB(math.Sqrt(sum / float64(len(block)))), nil
}
