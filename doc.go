// SPDX-License-Identifier: EPL-2.0

// Package cuemix finds mix points in audio tracks and plays tracks back to
// back with crossfades placed on those points.
//
// Each track gets four cue points, in seconds from its first frame:
//
//	begin  fade-in starts
//	start  fade-in done, the music has started
//	next   fade-out starts, the following track should be fully in
//	end    fade-out done
//
// start is found by scanning the loudness envelope forward from the first
// frame; next by scanning it backward from the last one. A scan stops at the
// first block loud enough to cross the peak level, or at the end of a run of
// blocks above the quiet level that lasts long enough.
//
// # Quick Start
//
//	reg := cuemix.DefaultRegistry()
//	a, err := cuemix.AnalyzeFile(ctx, reg, "intro.mp3", cue.DefaultSettings())
//	if err != nil {
//		return err
//	}
//	fmt.Println(cuemix.FormatTime(a.Cue.Start))
//
// # Packages
//
//   - audio: decoded buffers, the Source/Decoder interfaces and the registry
//   - formats/{wav,mp3,vorbis,aiff}: decoders
//   - envelope: block loudness in dBFS
//   - cue: the detector and cue point rules
//   - fade: gain curves built from cue points
//   - playlist: tracks, the playlist and the crossfade scheduler
//   - mixer: a software mixer that plays playlist tracks into a buffer
//
// cmd/cuemix wraps all of it: it prints the cue points of a set of files and
// can render them as one crossfaded WAV.
package cuemix
