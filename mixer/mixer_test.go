package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/internal/audiotest"
	"github.com/ik5/cuemix/playlist"
)

var _ playlist.Player = (*Voice)(nil)

func constantBuffer(t *testing.T, rate, channels int, seconds float64, v float32) *audio.Buffer {
	t.Helper()
	b, err := audio.NewBuffer(rate, audiotest.Constant(channels, int(seconds*float64(rate)), v))
	require.NoError(t, err)
	return b
}

func TestNew_InvalidFormat(t *testing.T) {
	t.Parallel()

	for _, tc := range [][2]int{{0, 2}, {44100, 0}, {-1, -1}} {
		_, err := New(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}

func TestMixer_SumsPlayingVoicesWithGain(t *testing.T) {
	t.Parallel()

	m, err := New(100, 2)
	require.NoError(t, err)

	a, err := m.NewVoice(constantBuffer(t, 100, 2, 1, 0.5))
	require.NoError(t, err)
	b, err := m.NewVoice(constantBuffer(t, 100, 2, 1, 0.25))
	require.NoError(t, err)
	_, err = m.NewVoice(constantBuffer(t, 100, 2, 1, 1)) // never played
	require.NoError(t, err)

	a.Play(0)
	b.Play(0)
	b.SetGain(0.5)

	out := m.Render(10)
	require.Len(t, out, 2)
	for c := range out {
		require.Len(t, out[c], 10)
		for _, s := range out[c] {
			assert.InDelta(t, 0.5+0.125, s, 1e-6)
		}
	}
	assert.InDelta(t, 0.1, a.Position(), 1e-12)
}

func TestVoice_StopsAtEnd(t *testing.T) {
	t.Parallel()

	m, err := New(100, 1)
	require.NoError(t, err)
	v, err := m.NewVoice(constantBuffer(t, 100, 1, 0.5, 1))
	require.NoError(t, err)

	v.Play(0.4)
	assert.True(t, m.Active())

	out := m.Render(20)
	assert.Equal(t, float32(1), out[0][9])
	assert.Equal(t, float32(0), out[0][10], "nothing past the buffer end")
	assert.False(t, v.Playing())
	assert.False(t, m.Active())
	assert.InDelta(t, 0.5, v.Position(), 1e-12)
}

func TestVoice_PlayClampsAndPause(t *testing.T) {
	t.Parallel()

	m, err := New(100, 1)
	require.NoError(t, err)
	v, err := m.NewVoice(constantBuffer(t, 100, 1, 1, 1))
	require.NoError(t, err)

	v.Play(-3)
	assert.Zero(t, v.Position())
	assert.True(t, v.Playing())

	v.Play(99)
	assert.InDelta(t, 1.0, v.Position(), 1e-12)
	assert.False(t, v.Playing(), "playing from the end stops at once")

	v.Play(0.2)
	v.Pause()
	m.Render(10)
	assert.InDelta(t, 0.2, v.Position(), 1e-12, "paused voices do not advance")
	assert.Equal(t, 1.0, v.Gain())
}

func TestMixer_Resamples(t *testing.T) {
	t.Parallel()

	m, err := New(200, 1)
	require.NoError(t, err)
	v, err := m.NewVoice(constantBuffer(t, 100, 1, 1, 0.5))
	require.NoError(t, err)

	v.Play(0.5)
	assert.InDelta(t, 0.5, v.Position(), 1e-12)

	out := m.Render(10)
	assert.InDelta(t, 0.5, out[0][5], 1e-3)
}

func TestMapChannels(t *testing.T) {
	t.Parallel()

	mono, err := audio.NewBuffer(10, [][]float32{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2}, {1, 2}}, mapChannels(mono, 2))

	quad, err := audio.NewBuffer(10, [][]float32{{1, 1}, {2, 2}, {3, 3}, {4, 4}})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 2}, {3, 3}}, mapChannels(quad, 2))
	assert.Equal(t, [][]float32{{2.5, 2.5}}, mapChannels(quad, 1))
}

func TestNewVoice_NilBuffer(t *testing.T) {
	t.Parallel()

	m, err := New(100, 1)
	require.NoError(t, err)
	_, err = m.NewVoice(nil)
	assert.ErrorIs(t, err, audio.ErrInvalidBuffer)
}
