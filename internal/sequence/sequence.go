// Package sequence produces evenly spaced sample sequences over one
// period of a signal, at the two fixed resolutions the tool's output
// contract is built on.
package sequence

import "math"

// Fixed external contract: callers and golden outputs depend on these.
const (
	// TableSamples is the number of (time, value) pairs in the printed
	// numeric table, spanning exactly one period.
	TableSamples = 8
	// PlotSamples is the number of columns in the ASCII plot, spanning
	// the same period at finer resolution.
	PlotSamples = 100
)

// Source evaluates a signal at a point in time.
type Source func(t float64) float64

// Sample is one (time, value) point.
type Sample struct {
	T float64 `json:"t"`
	Y float64 `json:"y"`
}

// Times returns n evenly spaced instants t_i = i·period/n for
// i = 0..n-1. The interval is half-open: t = period is never included.
func Times(period float64, n int) []float64 {
	ts := make([]float64, n)
	step := period / float64(n)
	for i := range ts {
		ts[i] = float64(i) * step
	}
	return ts
}

// Table samples one period of src at TableSamples points.
func Table(src Source, period float64) []Sample {
	out := make([]Sample, 0, TableSamples)
	for _, t := range Times(period, TableSamples) {
		out = append(out, Sample{T: t, Y: src(t)})
	}
	return out
}

// Plot samples one period of src at PlotSamples points, returning only
// the values, column by column.
func Plot(src Source, period float64) []float64 {
	return PlotShifted(src, period, 0)
}

// PlotShifted is Plot with every sample instant offset by shift before
// evaluation. The unmodulated sine plot uses this to express phase as a
// horizontal displacement of a phase-free sine, while its table bakes
// phase into the angle argument; both readings agree point for point.
func PlotShifted(src Source, period, shift float64) []float64 {
	out := make([]float64, 0, PlotSamples)
	for _, t := range Times(period, PlotSamples) {
		out = append(out, src(t+shift))
	}
	return out
}

// SineTimeShift converts a phase offset into the equivalent horizontal
// time shift phase/(2πf). A zero frequency shifts by nothing.
func SineTimeShift(phase, freq float64) float64 {
	if freq == 0 {
		return 0
	}
	return phase / (2 * math.Pi * freq)
}
