// SPDX-License-Identifier: EPL-2.0

package playlist

import "errors"

var (
	// ErrIndexOutOfRange indicates a playlist position that does not exist.
	ErrIndexOutOfRange = errors.New("playlist index out of range")

	// ErrEmptyPlaylist is returned when starting a playlist without tracks.
	ErrEmptyPlaylist = errors.New("playlist is empty")

	// ErrAlreadyPlaying is returned by Start while the scheduler runs.
	ErrAlreadyPlaying = errors.New("playlist is already playing")

	// ErrNilPlayer indicates a track created without a player.
	ErrNilPlayer = errors.New("track has no player")
)
