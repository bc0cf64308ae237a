// SPDX-License-Identifier: EPL-2.0

package cue

import (
	"context"
	"fmt"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/envelope"
)

// Detector is the per-scan state machine. Feed it block levels in scan order;
// it settles on the first hit and ignores everything after.
//
// The time attached to a block is the number of frames scanned up to and
// including it, over the rate: (k+1)*blockSize/rate for the k-th full block
// (0-based). A hit in the very first block is therefore reported one block
// in. A short final block advances the clock by its real length only, so a
// hit there is reported at the buffer's duration.
type Detector struct {
	th        Threshold
	blockSize int
	rate      int

	index       int
	frames      int
	windowOpen  bool
	windowStart float64

	done   bool
	result float64
}

func NewDetector(th Threshold, blockSize, sampleRate int) *Detector {
	return &Detector{th: th, blockSize: blockSize, rate: sampleRate}
}

// Feed classifies the level in dBFS of one full block and returns the hit
// time once found.
func (d *Detector) Feed(db float64) (float64, bool) {
	return d.feed(db, d.blockSize)
}

func (d *Detector) feed(db float64, frames int) (float64, bool) {
	if d.done {
		return d.result, true
	}

	d.index++
	d.frames += frames
	now := float64(d.frames) / float64(d.rate)

	switch {
	case db >= d.th.PeakLevel:
		d.finish(now)
	case db >= d.th.QuietLevel:
		if !d.windowOpen {
			d.windowOpen = true
			d.windowStart = now
		} else if now-d.windowStart >= d.th.QuietDuration {
			d.finish(now)
		}
	default:
		// false start
		d.windowOpen = false
	}

	return d.result, d.done
}

// Process measures a planar block and feeds its level. The block may be
// shorter than the block size; the clock advances by its length.
func (d *Detector) Process(block [][]float32) (float64, bool, error) {
	if d.done {
		return d.result, true, nil
	}
	db, err := envelope.Level(block)
	if err != nil {
		return 0, false, fmt.Errorf("block %d: %w", d.index, err)
	}
	t, ok := d.feed(db, len(block[0]))
	return t, ok, nil
}

// Done reports whether a hit has been found.
func (d *Detector) Done() bool { return d.done }

// Blocks returns how many blocks have been classified.
func (d *Detector) Blocks() int { return d.index }

func (d *Detector) finish(t float64) {
	d.done = true
	d.result = t
	d.windowOpen = false
}

// Detect scans buf in blocks of blockSize frames in direction dir and returns
// the hit time, measured from the scan's starting edge. It stops at the first
// hit. A scan that exhausts the buffer returns ErrDetectionStalled; ctx is
// checked between blocks.
func Detect(ctx context.Context, buf *audio.Buffer, dir audio.Direction, blockSize int, th Threshold) (float64, error) {
	if blockSize <= 0 {
		return 0, audio.ErrInvalidBlockSize
	}

	d := NewDetector(th, blockSize, buf.SampleRate())
	for k := 0; ; k++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("%s scan: %w", dir, err)
		}

		block, ok := buf.Block(k, blockSize, dir)
		if !ok {
			return 0, fmt.Errorf("%s scan over %.3fs: %w", dir, buf.Duration(), ErrDetectionStalled)
		}

		t, found, err := d.Process(block)
		if err != nil {
			return 0, fmt.Errorf("%s scan: %w", dir, err)
		}
		if found {
			return t, nil
		}
	}
}
