package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/dygy/wavegen/internal/errors"
)

func TestParsePhase(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.57", 1.57},
		{" 1.57 ", 1.57},
		{"-0.5", -0.5},
		{"3.14/2", 1.57},
		{"3.14159/4", 3.14159 / 4},
		{"90deg", math.Pi / 2},
		{"180 deg", math.Pi},
		{"90d", math.Pi / 2},
		{"45D", math.Pi / 4},
		{"d:90", math.Pi / 2},
		{"D:30", math.Pi / 6},
		{"r:1.57", 1.57},
		{"R:-2", -2},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePhase(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestParsePhaseRejects(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "r:", "d:x", "1/0", "/2", "deg"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePhase(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, werrors.ErrBadPhase)
		})
	}
}
