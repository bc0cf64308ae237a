// SPDX-License-Identifier: EPL-2.0

package cue

import "errors"

var (
	// ErrDetectionStalled is returned when a scan reaches the end of the
	// buffer without any block crossing a threshold.
	ErrDetectionStalled = errors.New("detection reached end of buffer without a hit")
	// ErrInvalidCueOrdering is returned when cue points violate
	// 0 <= begin <= start or next <= end <= duration.
	ErrInvalidCueOrdering = errors.New("invalid cue ordering")
	ErrInvalidSettings    = errors.New("invalid detection settings")
	ErrUnknownCue         = errors.New("unknown cue name")
)
