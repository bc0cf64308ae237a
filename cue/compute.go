// SPDX-License-Identifier: EPL-2.0

package cue

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/cuemix/audio"
)

// Compute finds the cue points of buf. The forward and reverse scans run
// concurrently over the same buffer; both must succeed before the points are
// finalized. The first error cancels the other scan and is returned as is.
func Compute(ctx context.Context, buf *audio.Buffer, s Settings) (Points, error) {
	if err := s.Validate(); err != nil {
		return Points{}, err
	}

	var start, rawNext float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := Detect(gctx, buf, audio.Forward, s.BlockSize, s.Start)
		if err != nil {
			return fmt.Errorf("start cue: %w", err)
		}
		start = t
		return nil
	})
	g.Go(func() error {
		t, err := Detect(gctx, buf, audio.Reverse, s.BlockSize, s.Next)
		if err != nil {
			return fmt.Errorf("next cue: %w", err)
		}
		rawNext = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return Points{}, err
	}

	return Finalize(start, rawNext, buf.Duration(), s)
}
