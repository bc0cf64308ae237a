// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/cuemix/utils"
)

// ResampleBuffer returns b converted to dstRate using Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass runs ahead of the interpolation to tame aliasing.
// b itself is returned when the rates already match.
func ResampleBuffer(b *Buffer, dstRate int) (*Buffer, error) {
	if dstRate <= 0 {
		return nil, fmt.Errorf("target rate %d: %w", dstRate, ErrInvalidBuffer)
	}
	if dstRate == b.rate {
		return b, nil
	}

	ratio := float64(b.rate) / float64(dstRate)
	srcFrames := b.Frames()
	dstFrames := int(float64(srcFrames) / ratio)

	out := make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		in := ch
		if ratio > 1 {
			in = lowPass(ch, 0.5)
		}
		out[c] = resampleChannel(in, ratio, dstFrames)
	}

	return NewBuffer(dstRate, out)
}

func resampleChannel(in []float32, ratio float64, dstFrames int) []float32 {
	out := make([]float32, dstFrames)
	if len(in) == 0 {
		return out
	}
	last := len(in) - 1
	at := func(i int) float32 {
		return in[max(0, min(i, last))]
	}

	for i := range dstFrames {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))
		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}
	return out
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0].
func lowPass(in []float32, alpha float32) []float32 {
	out := make([]float32, len(in))
	if len(in) == 0 {
		return out
	}
	prev := in[0]
	for i, x := range in {
		prev = alpha*x + (1-alpha)*prev
		out[i] = prev
	}
	return out
}
