// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Direction selects the order in which blocks of a Buffer are visited.
type Direction int

const (
	// Forward visits blocks from the first frame to the last.
	Forward Direction = iota
	// Reverse visits blocks from the last frame to the first.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Buffer is a fully decoded, read-only multichannel signal.
// Samples are stored per channel (planar), normalized to [-1,1].
type Buffer struct {
	rate     int
	channels [][]float32
}

// NewBuffer wraps planar channel data. The slices are not copied and must not
// be modified afterwards.
func NewBuffer(rate int, channels [][]float32) (*Buffer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", rate, ErrInvalidBuffer)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("no channels: %w", ErrInvalidBuffer)
	}
	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("channel %d has %d frames, want %d: %w", c, len(ch), frames, ErrInvalidBuffer)
		}
	}
	return &Buffer{rate: rate, channels: channels}, nil
}

func (b *Buffer) SampleRate() int { return b.rate }
func (b *Buffer) Channels() int   { return len(b.channels) }
func (b *Buffer) Frames() int     { return len(b.channels[0]) }

// Duration returns the length of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.rate)
}

// Channel returns the samples of channel c.
func (b *Buffer) Channel(c int) []float32 { return b.channels[c] }

// NumBlocks returns how many blocks of size frames cover the buffer,
// counting a trailing partial block.
func (b *Buffer) NumBlocks(size int) int {
	if size <= 0 {
		return 0
	}
	return (b.Frames() + size - 1) / size
}

// Block returns the k-th block of size frames in direction dir as per-channel
// sub-slices of the buffer. In Reverse order block 0 ends at the last frame.
// Frames inside a block keep their natural order; callers that only need
// order-independent statistics (RMS) can use it as-is. The last block may be
// shorter than size. ok is false once k runs past the buffer.
func (b *Buffer) Block(k, size int, dir Direction) (block [][]float32, ok bool) {
	frames := b.Frames()
	if size <= 0 || k < 0 || k*size >= frames {
		return nil, false
	}

	lo, hi := k*size, min((k+1)*size, frames)
	if dir == Reverse {
		lo, hi = frames-hi, frames-lo
	}

	block = make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		block[c] = ch[lo:hi]
	}
	return block, true
}
