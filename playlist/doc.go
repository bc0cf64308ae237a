// SPDX-License-Identifier: EPL-2.0

// Package playlist plays an ordered list of tracks back to back, starting
// each track's fade-in so that it overlaps its predecessor's fade-out.
//
// Every tick the Scheduler walks the playlist once, in order. Each track is
// told where its predecessor is and uses that predecessor's Next cue to
// decide when to start itself:
//
//	pl := playlist.New()
//	pl.Append(a)
//	pl.Append(b)
//
//	s := playlist.NewScheduler(pl, playlist.WithLogger(logger))
//	if err := s.Start(ctx); err != nil {
//		return err
//	}
//	defer s.Stop()
//
// Audio output is left to a Player, one per track.
package playlist
