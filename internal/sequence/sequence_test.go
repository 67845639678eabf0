package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dygy/wavegen/internal/wave"
)

func TestTimesHalfOpen(t *testing.T) {
	ts := Times(2.0, 8)
	require.Len(t, ts, 8)
	assert.Equal(t, 0.0, ts[0])
	assert.InDelta(t, 0.25, ts[1], 1e-12)
	// t = period is never produced
	assert.Less(t, ts[7], 2.0)
	assert.InDelta(t, 1.75, ts[7], 1e-12)
}

func TestTableAndPlotCounts(t *testing.T) {
	src := func(t float64) float64 { return t }
	assert.Len(t, Table(src, 1), TableSamples)
	assert.Len(t, Plot(src, 1), PlotSamples)
}

func TestContractConstants(t *testing.T) {
	// fixed external contract; golden outputs depend on these
	assert.Equal(t, 8, TableSamples)
	assert.Equal(t, 100, PlotSamples)
}

func TestSineTimeShift(t *testing.T) {
	assert.InDelta(t, 0.25, SineTimeShift(math.Pi/2, 1), 1e-12)
	assert.Equal(t, 0.0, SineTimeShift(math.Pi, 0))
}

// The table bakes phase into the angle argument; the plot shifts time
// instead. Both must reconstruct the same values for the same column.
func TestTableVersusPlotPhaseHandling(t *testing.T) {
	const phase = math.Pi / 2
	full := wave.Sine{Freq: 1, Amp: 1, Phase: phase}
	flat := wave.Sine{Freq: 1, Amp: 1}

	table := Table(full.Sample, 1)
	require.InDelta(t, 1, table[0].Y, 1e-12, "table t=0 is sin(π/2)")

	plot := PlotShifted(flat.Sample, 1, SineTimeShift(phase, 1))
	require.InDelta(t, 1, plot[0], 1e-12, "plot reconstructs via time shift")

	for i := 0; i < PlotSamples; i += 25 {
		at := float64(i) / PlotSamples
		require.InDelta(t, full.Sample(at), plot[i], 1e-9, "col %d", i)
	}
}
