// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Collect drains src into a planar Buffer. src is not closed.
func Collect(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("source reports %d channels: %w", channels, ErrInvalidBuffer)
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels
	buf := make([]float32, size)

	planar := make([][]float32, channels)
	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := range frames {
			base := f * channels
			for c := range channels {
				planar[c] = append(planar[c], buf[base+c])
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples after %d frames: %w", len(planar[0]), err)
		}
		if n == 0 {
			// Some decoders signal the end with (0, nil) on a final short read.
			break
		}
	}

	return NewBuffer(src.SampleRate(), planar)
}

// Decode runs dec over r and collects the whole stream. Every failure is
// reported wrapped in ErrDecodeFailure.
func Decode(dec Decoder, r io.Reader) (*Buffer, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	defer src.Close()

	b, err := Collect(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	return b, nil
}

// bufferSource streams a Buffer back out as interleaved samples.
type bufferSource struct {
	b   *Buffer
	pos int
}

// Source returns a Source that replays the buffer from its first frame.
func (b *Buffer) Source() Source {
	return &bufferSource{b: b}
}

func (s *bufferSource) SampleRate() int { return s.b.rate }
func (s *bufferSource) Channels() int   { return len(s.b.channels) }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := len(s.b.channels)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	remaining := s.b.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c, ch := range s.b.channels {
			dst[f*channels+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.b.Frames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}
