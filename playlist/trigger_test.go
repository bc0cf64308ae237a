package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrigger_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from      Trigger
		untilNext float64
		want      Trigger
		fire      bool
	}{
		{"armed far away", Armed, 5, Armed, false},
		{"armed at trigger point", Armed, 2, Fired, true},
		{"armed inside fade", Armed, 1, Fired, true},
		{"armed past next", Armed, -3, Fired, true},
		{"fired inside fade", Fired, 1, Fired, false},
		{"fired at trigger point", Fired, 2, Fired, false},
		{"fired after rewind", Fired, 2.01, Armed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, fire := tt.from.Next(tt.untilNext, 2)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fire, fire)
		})
	}
}

func TestTrigger_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "armed", Armed.String())
	assert.Equal(t, "fired", Fired.String())
	assert.Equal(t, "unknown", Trigger(7).String())
}
