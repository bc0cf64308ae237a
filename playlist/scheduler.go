// SPDX-License-Identifier: EPL-2.0

package playlist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ik5/cuemix/cue"
)

// DefaultInterval is the scheduling period, one display frame at 60 Hz.
const DefaultInterval = time.Second / 60

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scheduler drives a Playlist. Start runs a ticker loop until Stop or until
// the context passed to Start is cancelled. Begin and Tick can also be called
// directly to drive playback from another clock, such as an offline render.
type Scheduler struct {
	list     *Playlist
	interval time.Duration
	logger   *slog.Logger

	// tickMu serializes passes over the playlist.
	tickMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(list *Playlist, opts ...Option) *Scheduler {
	s := &Scheduler{
		list:     list,
		interval: DefaultInterval,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start re-arms every track, plays the first one from its Begin cue and
// starts ticking. Cancelling ctx has the same effect as Stop: the loop ends
// and every track is paused.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running() {
		return ErrAlreadyPlaying
	}
	if err := s.Begin(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)

	s.logger.Info("playlist started", "tracks", s.list.Len(), "interval", s.interval)
	return nil
}

// Stop halts the ticker loop, waits for it to exit and pauses every track.
// It is a no-op when the scheduler is not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// pauseAll pauses every track once the ticker loop has ended.
func (s *Scheduler) pauseAll() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	for _, t := range s.list.Tracks() {
		if t != nil {
			t.Pause()
		}
	}
}

// Playing reports whether the ticker loop is running.
func (s *Scheduler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running()
}

func (s *Scheduler) running() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Begin re-arms every track and plays the first one from Begin.
func (s *Scheduler) Begin() error {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	tracks := s.list.Tracks()
	var first *Track
	for _, t := range tracks {
		if t == nil {
			continue
		}
		t.rearm()
		if first == nil {
			first = t
		}
	}
	if first == nil {
		return ErrEmptyPlaylist
	}

	if err := first.PlayCue(cue.Begin); err != nil {
		return err
	}
	s.logger.Debug("track started", "name", first.Name, "id", first.ID, "at", first.Cue.Begin)
	return nil
}

// Tick makes one pass over the playlist. A nil entry is treated as a gap:
// the track after it has no predecessor for that pass.
func (s *Scheduler) Tick() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	var prev *Step
	for i, t := range s.list.Tracks() {
		if t == nil {
			prev = nil
			continue
		}

		step, fired := t.tick(prev)
		if fired {
			s.logger.Debug("crossfade started",
				"index", i,
				"name", t.Name,
				"id", t.ID,
				"predecessor_position", prev.Position,
			)
		}
		prev = &step
	}
}

func (s *Scheduler) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.pauseAll()
			s.logger.Info("playlist stopped", "reason", context.Cause(ctx))
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
