// Package pipeline assembles the full table → plot → canvas output for
// one configured signal. It is the single path shared by the interactive
// session, the plot command and the web interface.
package pipeline

import (
	werrors "github.com/dygy/wavegen/internal/errors"
	"github.com/dygy/wavegen/internal/modulation"
	"github.com/dygy/wavegen/internal/render"
	"github.com/dygy/wavegen/internal/sequence"
	"github.com/dygy/wavegen/internal/wave"
)

// Result contains all outputs for one signal over one period
type Result struct {
	Table  []sequence.Sample // numeric table, TableSamples points
	Plot   []float64         // plot values, PlotSamples columns
	Amp    float64           // display amplitude the canvas is scaled to
	Period float64           // one period of the driving frequency, seconds
	Canvas *render.Canvas
}

// Run produces the outputs for a primary (unmodulated) waveform. A
// non-positive frequency is rejected here, before any sampling: that
// precondition belongs to the primary display path, not the sampler.
func Run(w wave.Waveform) (*Result, error) {
	if w.Frequency() <= 0 {
		return nil, werrors.ErrNonPositiveFrequency
	}
	period := 1 / w.Frequency()

	// The table bakes phase into the angle argument. The sine plot
	// instead shifts time across a phase-free sine so phase reads as a
	// horizontal displacement; the two agree point for point.
	table := sequence.Table(w.Sample, period)
	var plot []float64
	if s, ok := w.(wave.Sine); ok {
		flat := wave.Sine{Freq: s.Freq, Amp: s.Amp}
		shift := sequence.SineTimeShift(s.Phase, s.Freq)
		plot = sequence.PlotShifted(flat.Sample, period, shift)
	} else {
		plot = sequence.Plot(w.Sample, period)
	}

	canvas, err := render.Render(plot, render.DefaultRows, w.Amplitude())
	if err != nil {
		return nil, err
	}
	return &Result{
		Table:  table,
		Plot:   plot,
		Amp:    w.Amplitude(),
		Period: period,
		Canvas: canvas,
	}, nil
}

// RunModulated produces the outputs for a modulated signal over one
// period of its carrier. Degenerate carrier frequency falls back to a
// one-second period inside the modulator rather than failing.
func RunModulated(m modulation.Modulator) (*Result, error) {
	period := m.Period()
	table := sequence.Table(m.Sample, period)
	plot := sequence.Plot(m.Sample, period)

	canvas, err := render.Render(plot, render.DefaultRows, m.DisplayAmplitude())
	if err != nil {
		return nil, err
	}
	return &Result{
		Table:  table,
		Plot:   plot,
		Amp:    m.DisplayAmplitude(),
		Period: period,
		Canvas: canvas,
	}, nil
}
