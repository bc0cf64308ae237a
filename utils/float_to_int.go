// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToPCM clamps x to [-1,1] and scales it to a signed integer sample of
// the given bit depth (8, 16, 24 or 32). The positive full scale is
// 2^(bits-1)-1 so that +1.0 never overflows.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int(float64(x) * float64(PCMFullScale(bitDepth)-1))
}

// PCMFullScale returns 2^(bitDepth-1), the divisor that maps signed integer
// samples of that depth into [-1,1). Unknown depths fall back to 16-bit.
func PCMFullScale(bitDepth int) int64 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return int64(1) << (bitDepth - 1)
	default:
		return 1 << 15
	}
}
