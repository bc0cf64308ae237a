// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/ik5/cuemix"
	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/formats/wav"
	"github.com/ik5/cuemix/internal/config"
	"github.com/ik5/cuemix/mixer"
	"github.com/ik5/cuemix/playlist"
)

func renderFile(ctx context.Context, cfg config.MixConfig, analyses []cuemix.Analysis, log *slog.Logger) error {
	mix, err := render(ctx, cfg, analyses, log)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := wav.Encode(f, mix, cfg.BitDepth); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info("mix written", "out", cfg.Out, "duration", mix.Duration(), "tracks", len(analyses))
	return nil
}

// render plays the analyzed tracks through a scheduler into a mixer, one
// scheduler tick per rendered chunk, until every voice has stopped.
func render(ctx context.Context, cfg config.MixConfig, analyses []cuemix.Analysis, log *slog.Logger) (*audio.Buffer, error) {
	if len(analyses) == 0 {
		return nil, playlist.ErrEmptyPlaylist
	}

	rate := cfg.SampleRate
	if rate == 0 {
		rate = analyses[0].Buffer.SampleRate()
	}

	m, err := mixer.New(rate, cfg.Channels)
	if err != nil {
		return nil, err
	}

	list := playlist.New()
	for _, a := range analyses {
		v, err := m.NewVoice(a.Buffer)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Path, err)
		}
		t, err := playlist.NewTrack(a.Name, a.Buffer, a.Cue, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Path, err)
		}
		list.Append(t)
	}

	sched := playlist.NewScheduler(list, playlist.WithInterval(cfg.Tick), playlist.WithLogger(log))
	if err := sched.Begin(); err != nil {
		return nil, err
	}

	chunk := max(1, int(math.Round(cfg.Tick.Seconds()*float64(rate))))
	out := make([][]float32, cfg.Channels)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// A tick can start the next track after the previous one ran out,
		// so it comes before the activity check.
		sched.Tick()
		if !m.Active() {
			break
		}

		for c, samples := range m.Render(chunk) {
			out[c] = append(out[c], samples...)
		}
	}

	return audio.NewBuffer(rate, out)
}
