package playlist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/cue"
	"github.com/ik5/cuemix/internal/audiotest"
)

// fakePlayer records calls; its position only moves when the test says so.
type fakePlayer struct {
	mu      sync.Mutex
	pos     float64
	gain    float64
	playing bool
	plays   []float64
	pauses  int
}

func (p *fakePlayer) Play(from float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = from
	p.playing = true
	p.plays = append(p.plays, from)
}

func (p *fakePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.pauses++
}

func (p *fakePlayer) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

func (p *fakePlayer) SetGain(g float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gain = g
}

func (p *fakePlayer) seek(pos float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = pos
}

func (p *fakePlayer) snapshot() (gain float64, playing bool, plays []float64, pauses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gain, p.playing, append([]float64(nil), p.plays...), p.pauses
}

// newTestTrack builds a track over seconds of silence at a low rate.
func newTestTrack(t *testing.T, name string, seconds float64, p cue.Points) (*Track, *fakePlayer) {
	t.Helper()

	buf, err := audio.NewBuffer(100, audiotest.Silence(100, 1, seconds))
	require.NoError(t, err)

	player := &fakePlayer{}
	tr, err := NewTrack(name, buf, p, player)
	require.NoError(t, err)
	return tr, player
}
