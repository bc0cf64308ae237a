// SPDX-License-Identifier: EPL-2.0

// Package cue finds the four cue points of a track from its loudness envelope.
//
// A track is scanned twice in fixed-size blocks. The forward scan yields
// Start, the first moment the track becomes audible; the reverse scan, run over
// the same buffer from its last frame, yields the distance from the end at
// which the track stops being audible, which is converted into Next. Begin and
// End extend Start and Next outwards by the configured fade lengths:
//
//	begin ── start ················· next ── end
//	  fade in                          fade out
//
// Each scan classifies block levels against a peak and a quiet threshold: a
// block at or above the peak level is an immediate hit, while blocks between
// the two thresholds must persist for QuietDuration seconds before they count.
//
//	pts, err := cue.Compute(ctx, buf, cue.DefaultSettings())
//	if errors.Is(err, cue.ErrDetectionStalled) {
//	    // the track never rose above the quiet threshold
//	}
package cue
