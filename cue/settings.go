// SPDX-License-Identifier: EPL-2.0

package cue

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Threshold configures one scan direction.
type Threshold struct {
	// PeakLevel (dBFS): a block at or above it is an immediate hit.
	PeakLevel float64 `json:"peak_level" validate:"gtfield=QuietLevel"`
	// QuietLevel (dBFS): blocks at or above it, sustained for QuietDuration, are a hit.
	QuietLevel float64 `json:"quiet_level"`
	// QuietDuration in seconds.
	QuietDuration float64 `json:"quiet_duration" validate:"gte=0"`
}

// Settings configures cue detection for a track.
type Settings struct {
	Start Threshold `json:"start"`
	Next  Threshold `json:"next"`

	// BeginFade moves Begin this many seconds before Start.
	BeginFade float64 `json:"begin_fade"`
	// EndFade moves End this many seconds after Next.
	EndFade float64 `json:"end_fade"`

	// BlockSize is the analysis block length in frames.
	BlockSize int `json:"block_size" validate:"min=256,max=16384,pow2"`
}

const DefaultBlockSize = 256

// DefaultThreshold returns the per-direction defaults: peak -15 dBFS,
// quiet -30 dBFS sustained for half a second.
func DefaultThreshold() Threshold {
	return Threshold{PeakLevel: -15, QuietLevel: -30, QuietDuration: 0.5}
}

func DefaultSettings() Settings {
	return Settings{
		Start:     DefaultThreshold(),
		Next:      DefaultThreshold(),
		BeginFade: 0,
		EndFade:   0.5,
		BlockSize: DefaultBlockSize,
	}
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("pow2", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n > 0 && bits.OnesCount64(uint64(n)) == 1
	})
	return v
})

// Validate reports threshold and block size problems as ErrInvalidSettings and
// negative fades, which would put Begin after Start or End before Next, as
// ErrInvalidCueOrdering.
func (s Settings) Validate() error {
	if err := validate().Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if s.BeginFade < 0 || s.EndFade < 0 {
		return fmt.Errorf("fades %.3fs/%.3fs must not be negative: %w", s.BeginFade, s.EndFade, ErrInvalidCueOrdering)
	}
	return nil
}
