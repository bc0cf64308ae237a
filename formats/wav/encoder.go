// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/utils"
)

// encodeFrames is the number of frames converted per write.
const encodeFrames = 4096

// Encode writes buf as an integer PCM WAV of the given bit depth (16 or 24).
// Samples outside [-1,1] are clipped. The header sizes are patched on close,
// hence the io.WriteSeeker.
func Encode(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	channels := buf.Channels()
	enc := gowav.NewEncoder(w, buf.SampleRate(), bitDepth, channels, wavFormatPCM)

	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate()},
		SourceBitDepth: bitDepth,
		Data:           make([]int, 0, encodeFrames*channels),
	}

	frames := buf.Frames()
	for start := 0; start < frames; start += encodeFrames {
		end := min(start+encodeFrames, frames)

		ib.Data = ib.Data[:0]
		for f := start; f < end; f++ {
			for c := range channels {
				ib.Data = append(ib.Data, utils.Float32ToPCM(buf.Channel(c)[f], bitDepth))
			}
		}

		if err := enc.Write(ib); err != nil {
			return fmt.Errorf("writing frames %d-%d: %w", start, end, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}
	return nil
}
