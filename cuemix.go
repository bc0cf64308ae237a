// SPDX-License-Identifier: EPL-2.0

package cuemix

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/cue"
	"github.com/ik5/cuemix/formats/aiff"
	"github.com/ik5/cuemix/formats/mp3"
	"github.com/ik5/cuemix/formats/vorbis"
	"github.com/ik5/cuemix/formats/wav"
	"github.com/ik5/cuemix/playlist"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// Analysis is a decoded track with its cue points.
type Analysis struct {
	Path   string        `json:"path"`
	Name   string        `json:"name"`
	Buffer *audio.Buffer `json:"-"`
	Cue    cue.Points    `json:"cue"`
}

// Duration of the decoded track in seconds.
func (a Analysis) Duration() float64 { return a.Buffer.Duration() }

// Analyze decodes r with dec and computes its cue points.
func Analyze(ctx context.Context, dec audio.Decoder, r io.Reader, s cue.Settings) (*audio.Buffer, cue.Points, error) {
	buf, err := audio.Decode(dec, r)
	if err != nil {
		return nil, cue.Points{}, err
	}
	p, err := cue.Compute(ctx, buf, s)
	if err != nil {
		return nil, cue.Points{}, err
	}
	return buf, p, nil
}

// AnalyzeFile picks a decoder from the file extension and analyzes the file.
func AnalyzeFile(ctx context.Context, reg *audio.Registry, path string, s cue.Settings) (Analysis, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return Analysis{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, p, err := Analyze(ctx, dec, f, s)
	if err != nil {
		return Analysis{}, fmt.Errorf("%s: %w", path, err)
	}

	return Analysis{
		Path:   path,
		Name:   playlist.NameFromPath(path),
		Buffer: buf,
		Cue:    p,
	}, nil
}

// AnalyzeFiles analyzes paths with at most workers files in flight and
// returns the results in input order. The first failure cancels the rest.
func AnalyzeFiles(ctx context.Context, reg *audio.Registry, paths []string, s cue.Settings, workers int) ([]Analysis, error) {
	out := make([]Analysis, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, path := range paths {
		g.Go(func() error {
			a, err := AnalyzeFile(gctx, reg, path, s)
			if err != nil {
				return err
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatTime renders seconds as m:ss.ss.
func FormatTime(sec float64) string {
	return fmt.Sprintf("%d:%05.2f", int(sec/60), math.Mod(sec, 60))
}
