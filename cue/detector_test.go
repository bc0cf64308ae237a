package cue

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/internal/audiotest"
)

const (
	testRate  = 8000
	testBlock = 256
	blockSec  = float64(testBlock) / testRate
)

func newBuffer(t *testing.T, rate int, planar [][]float32) *audio.Buffer {
	t.Helper()
	b, err := audio.NewBuffer(rate, planar)
	require.NoError(t, err)
	return b
}

func TestDetector_PeakFiresOnFirstBlock(t *testing.T) {
	t.Parallel()

	d := NewDetector(Threshold{PeakLevel: -15, QuietLevel: -30, QuietDuration: 0.5}, testBlock, testRate)

	got, ok := d.Feed(-10)
	require.True(t, ok)
	assert.Equal(t, blockSec, got, "first block reports one block in")
	assert.Equal(t, 1, d.Blocks())
}

func TestDetector_NeverFiresBetweenThresholdsWithoutDuration(t *testing.T) {
	t.Parallel()

	// A level between quiet and peak with an unreachable duration never fires.
	d := NewDetector(Threshold{PeakLevel: -15, QuietLevel: -30, QuietDuration: 1e9}, testBlock, testRate)
	for range 10000 {
		_, ok := d.Feed(-20)
		require.False(t, ok)
	}
}

func TestDetector_NeverFiresBelowQuiet(t *testing.T) {
	t.Parallel()

	d := NewDetector(DefaultThreshold(), testBlock, testRate)
	for _, db := range []float64{-31, -60, math.Inf(-1), math.NaN()} {
		for range 100 {
			_, ok := d.Feed(db)
			require.False(t, ok, "level %v", db)
		}
	}
	assert.False(t, d.Done())
}

func TestDetector_SustainedHit(t *testing.T) {
	t.Parallel()

	th := Threshold{PeakLevel: -10, QuietLevel: -30, QuietDuration: 0.5}
	d := NewDetector(th, testBlock, testRate)

	silentBlocks := int(math.Ceil(th.QuietDuration / 2 / blockSec))
	for range silentBlocks {
		_, ok := d.Feed(math.Inf(-1))
		require.False(t, ok)
	}

	windowStart := float64((silentBlocks+1)*testBlock) / testRate
	var got float64
	var ok bool
	for range int((th.QuietDuration+0.05)/blockSec) + 1 {
		if got, ok = d.Feed(th.QuietLevel); ok {
			break
		}
	}

	require.True(t, ok)
	assert.GreaterOrEqual(t, got, windowStart+th.QuietDuration)
	assert.Less(t, got-blockSec, windowStart+th.QuietDuration, "fires at the first qualifying block")
}

func TestDetector_FalseStartResetsWindow(t *testing.T) {
	t.Parallel()

	th := Threshold{PeakLevel: -10, QuietLevel: -30, QuietDuration: 5*blockSec - 1e-9}
	d := NewDetector(th, testBlock, testRate)

	for range 4 {
		_, ok := d.Feed(-20)
		require.False(t, ok)
	}
	_, ok := d.Feed(-40) // drop below quiet
	require.False(t, ok)

	// Window reopens at block 6: needs 5 more blocks after that.
	for i := range 5 {
		_, ok = d.Feed(-20)
		require.False(t, ok, "block %d", i)
	}
	got, ok := d.Feed(-20)
	require.True(t, ok)
	assert.InDelta(t, 11*blockSec, got, 1e-12)
}

func TestDetector_ZeroDurationNeedsTwoBlocks(t *testing.T) {
	t.Parallel()

	d := NewDetector(Threshold{PeakLevel: -10, QuietLevel: -30, QuietDuration: 0}, testBlock, testRate)
	_, ok := d.Feed(-20)
	require.False(t, ok, "first quiet block only opens the window")
	got, ok := d.Feed(-20)
	require.True(t, ok)
	assert.InDelta(t, 2*blockSec, got, 1e-12)
}

func TestDetector_IgnoresFeedAfterHit(t *testing.T) {
	t.Parallel()

	d := NewDetector(DefaultThreshold(), testBlock, testRate)
	d.Feed(-40)
	first, ok := d.Feed(0)
	require.True(t, ok)

	again, ok := d.Feed(0)
	assert.True(t, ok)
	assert.Equal(t, first, again)
	assert.Equal(t, 2, d.Blocks())
}

func TestDetect_ConstantLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   float64
		th      Threshold
		want    float64
		stalled bool
	}{
		{"above peak fires at first block", -10, Threshold{-15, -30, 0.5}, blockSec, false},
		{"just above peak fires at first block", -14.9, Threshold{-15, -30, 0.5}, blockSec, false},
		{"between thresholds with long duration never fires", -20, Threshold{-15, -30, 10}, 0, true},
		{"below quiet never fires", -40, Threshold{-15, -30, 0.5}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := newBuffer(t, testRate, audiotest.Level(testRate, 2, 2, tt.level))
			for _, dir := range []audio.Direction{audio.Forward, audio.Reverse} {
				got, err := Detect(context.Background(), buf, dir, testBlock, tt.th)
				if tt.stalled {
					assert.ErrorIs(t, err, ErrDetectionStalled)
					continue
				}
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got, 1e-12, "direction %s", dir)
			}
		})
	}
}

func TestDetect_SustainedInBuffer(t *testing.T) {
	t.Parallel()

	th := Threshold{PeakLevel: -10, QuietLevel: -30, QuietDuration: 0.5}
	buf := newBuffer(t, testRate, audiotest.Concat(
		audiotest.Silence(testRate, 1, th.QuietDuration/2),
		audiotest.Level(testRate, 1, th.QuietDuration+0.1, -20),
		audiotest.Silence(testRate, 1, 1),
	))

	got, err := Detect(context.Background(), buf, audio.Forward, testBlock, th)
	require.NoError(t, err)

	onset := th.QuietDuration / 2
	assert.GreaterOrEqual(t, got, onset+th.QuietDuration)
	assert.LessOrEqual(t, got, onset+th.QuietDuration+2*blockSec)
}

func TestDetect_ReverseMeasuresFromEnd(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, testRate, audiotest.Concat(
		audiotest.Silence(testRate, 2, 1),
		audiotest.Level(testRate, 2, 3, -10),
		audiotest.Silence(testRate, 2, 1),
	))

	fwd, err := Detect(context.Background(), buf, audio.Forward, testBlock, DefaultThreshold())
	require.NoError(t, err)
	rev, err := Detect(context.Background(), buf, audio.Reverse, testBlock, DefaultThreshold())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, fwd, blockSec)
	assert.InDelta(t, 1.0, rev, blockSec)
}

// shortTail is one second at 1000 Hz, silent except for 100 frames at 0.9
// at one edge. With 256-frame blocks the last block holds 232 frames.
func shortTail(t *testing.T, atEnd bool) *audio.Buffer {
	t.Helper()
	loud := audiotest.Constant(1, 100, 0.9)
	rest := audiotest.Silence(1000, 1, 0.9)
	if atEnd {
		return newBuffer(t, 1000, audiotest.Concat(rest, loud))
	}
	return newBuffer(t, 1000, audiotest.Concat(loud, rest))
}

func TestDetect_ShortFinalBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		atEnd bool
		dir   audio.Direction
	}{
		{"forward", true, audio.Forward},
		{"reverse", false, audio.Reverse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := shortTail(t, tt.atEnd)
			require.Equal(t, 1000, buf.Frames())

			got, err := Detect(context.Background(), buf, tt.dir, 256, DefaultThreshold())
			require.NoError(t, err)
			assert.InDelta(t, buf.Duration(), got, 1e-9)
		})
	}
}

func TestCompute_ShortFinalBlock(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()

	p, err := Compute(context.Background(), shortTail(t, true), s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.Start, 1e-9)
	assert.InDelta(t, 0.744, p.Next, 1e-9)
	assert.InDelta(t, 1.0, p.End, 1e-9)

	p, err = Compute(context.Background(), shortTail(t, false), s)
	require.NoError(t, err)
	assert.InDelta(t, 0.256, p.Start, 1e-9)
	assert.InDelta(t, 0.0, p.Next, 1e-9)
	assert.InDelta(t, 0.5, p.End, 1e-9)
}

func TestDetect_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := newBuffer(t, testRate, audiotest.Level(testRate, 1, 1, -10))
	_, err := Detect(ctx, buf, audio.Forward, testBlock, DefaultThreshold())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetect_InvalidBlockSize(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, testRate, audiotest.Level(testRate, 1, 1, -10))
	_, err := Detect(context.Background(), buf, audio.Forward, 0, DefaultThreshold())
	assert.ErrorIs(t, err, audio.ErrInvalidBlockSize)
}

func BenchmarkDetect_Stalled(b *testing.B) {
	buf, _ := audio.NewBuffer(44100, audiotest.Silence(44100, 2, 10))
	for b.Loop() {
		_, _ = Detect(context.Background(), buf, audio.Reverse, 1024, DefaultThreshold())
	}
}
