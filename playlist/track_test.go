package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/cue"
	"github.com/ik5/cuemix/internal/audiotest"
)

func TestNewTrack_Validation(t *testing.T) {
	t.Parallel()

	buf, err := audio.NewBuffer(100, audiotest.Silence(100, 1, 10))
	require.NoError(t, err)

	_, err = NewTrack("a", nil, cue.Points{}, &fakePlayer{})
	assert.ErrorIs(t, err, audio.ErrInvalidBuffer)

	_, err = NewTrack("a", buf, cue.Points{}, nil)
	assert.ErrorIs(t, err, ErrNilPlayer)

	_, err = NewTrack("a", buf, cue.Points{Begin: 0, Start: 1, Next: 9, End: 11}, &fakePlayer{})
	assert.ErrorIs(t, err, cue.ErrInvalidCueOrdering)

	tr, err := NewTrack("a", buf, cue.Points{Begin: 0, Start: 1, Next: 9, End: 10}, &fakePlayer{})
	require.NoError(t, err)
	assert.NotZero(t, tr.ID)
	assert.Equal(t, Armed, tr.Trigger())
	assert.Equal(t, 1.0, tr.Curve().FadeIn())
}

func TestTrack_PlayCue(t *testing.T) {
	t.Parallel()

	tr, player := newTestTrack(t, "a", 10, cue.Points{Begin: 1, Start: 2, Next: 8, End: 9})

	for _, n := range cue.Names {
		require.NoError(t, tr.PlayCue(n))
	}
	require.ErrorIs(t, tr.PlayCue("middle"), cue.ErrUnknownCue)

	tr.Play(4.5)
	tr.Pause()

	_, playing, plays, pauses := player.snapshot()
	assert.Equal(t, []float64{1, 2, 8, 9, 4.5}, plays)
	assert.False(t, playing)
	assert.Equal(t, 1, pauses)
	assert.Equal(t, 4.5, tr.Position())
}

// Predecessor next cue at 10, follower fade-in of 2: the follower fires
// when the predecessor reaches 8 and re-arms when rewound below 8.
func TestTrack_TickTriggerPoint(t *testing.T) {
	t.Parallel()

	prevCue := cue.Points{Begin: 0, Start: 0, Next: 10, End: 12}
	b, player := newTestTrack(t, "b", 20, cue.Points{Begin: 0, Start: 2, Next: 18, End: 20})

	tick := func(pos float64) {
		b.Tick(&Step{Position: pos, Cue: prevCue})
	}

	for _, pos := range []float64{0, 5, 7.9, 7.999} {
		tick(pos)
		require.Equal(t, Armed, b.Trigger(), "position %v", pos)
	}

	tick(8)
	assert.Equal(t, Fired, b.Trigger())
	_, playing, plays, _ := player.snapshot()
	assert.True(t, playing)
	assert.Equal(t, []float64{0}, plays, "started from begin")

	// Holding or passing the trigger point does not restart the follower.
	for _, pos := range []float64{8, 8, 9, 11} {
		tick(pos)
		require.Equal(t, Fired, b.Trigger())
	}
	_, _, plays, _ = player.snapshot()
	assert.Len(t, plays, 1)

	tick(7.9)
	assert.Equal(t, Armed, b.Trigger(), "rewound below trigger point")

	tick(8.5)
	assert.Equal(t, Fired, b.Trigger())
	_, _, plays, _ = player.snapshot()
	assert.Len(t, plays, 2)
}

func TestTrack_TickFirstTrackNeverTriggers(t *testing.T) {
	t.Parallel()

	tr, player := newTestTrack(t, "a", 10, cue.Points{Begin: 0, Start: 1, Next: 8, End: 9})

	for range 10 {
		tr.Tick(nil)
	}
	assert.Equal(t, Armed, tr.Trigger())
	_, _, plays, _ := player.snapshot()
	assert.Empty(t, plays)
}

func TestTrack_TickSetsGain(t *testing.T) {
	t.Parallel()

	p := cue.Points{Begin: 0, Start: 1, Next: 4, End: 5}
	tr, player := newTestTrack(t, "a", 5, p)

	for _, pos := range []float64{0, 0.5, 2.5, 4.5, 5} {
		player.seek(pos)
		step := tr.Tick(nil)

		gain, _, _, _ := player.snapshot()
		assert.InDelta(t, tr.Curve().Gain(pos), gain, 1e-12, "position %v", pos)
		assert.Equal(t, pos, step.Position)
		assert.Equal(t, p, step.Cue)
	}
}

func TestNameFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "song", NameFromPath("/music/song.mp3"))
	assert.Equal(t, "a.b", NameFromPath("a.b.wav"))
	assert.Equal(t, "noext", NameFromPath("dir/noext"))
}
