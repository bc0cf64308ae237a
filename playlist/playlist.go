// SPDX-License-Identifier: EPL-2.0

package playlist

import (
	"fmt"
	"slices"
	"sync"
)

// Playlist is an ordered list of tracks. Order is playback order. It may be
// changed while a Scheduler plays it; changes take effect on the next tick.
type Playlist struct {
	mu     sync.RWMutex
	tracks []*Track
}

func New(tracks ...*Track) *Playlist {
	return &Playlist{tracks: slices.Clone(tracks)}
}

func (p *Playlist) Append(t *Track) {
	p.mu.Lock()
	p.tracks = append(p.tracks, t)
	p.mu.Unlock()
}

// RemoveAt removes and returns the track at i.
func (p *Playlist) RemoveAt(i int) (*Track, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.check(i); err != nil {
		return nil, err
	}
	t := p.tracks[i]
	p.tracks = slices.Delete(p.tracks, i, i+1)
	return t, nil
}

// Swap exchanges the tracks at i and j.
func (p *Playlist) Swap(i, j int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.check(i); err != nil {
		return err
	}
	if err := p.check(j); err != nil {
		return err
	}
	p.tracks[i], p.tracks[j] = p.tracks[j], p.tracks[i]
	return nil
}

func (p *Playlist) At(i int) (*Track, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.check(i); err != nil {
		return nil, err
	}
	return p.tracks[i], nil
}

func (p *Playlist) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.tracks)
}

// Tracks returns a snapshot of the playlist.
func (p *Playlist) Tracks() []*Track {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.tracks)
}

func (p *Playlist) check(i int) error {
	if i < 0 || i >= len(p.tracks) {
		return fmt.Errorf("index %d of %d: %w", i, len(p.tracks), ErrIndexOutOfRange)
	}
	return nil
}
