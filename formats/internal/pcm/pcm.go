// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/cuemix/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a Reader as normalized float32 samples.
type Source struct {
	r      Reader
	format *goaudio.Format
	scale  float32
	buf    *goaudio.IntBuffer
}

// NewSource wraps r. bitDepth selects the integer full scale.
func NewSource(r Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		r:      r,
		format: format,
		scale:  float32(utils.PCMFullScale(bitDepth)),
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.r.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	// a short read without error is the end of the chunk
	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}
