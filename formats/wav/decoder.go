// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/formats/internal/pcm"
)

// wavFormatPCM is the fmt chunk tag of integer PCM.
const wavFormatPCM = 1

type Decoder struct{}

// Decode reads the WAV header and returns a stream over its data chunk.
// go-audio needs to seek; readers that cannot are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("format tag %d: %w", dec.WavAudioFormat, ErrUnsupportedFormat)
	}
	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d bits: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return pcm.NewSource(dec, format, int(dec.BitDepth)), nil
}
