// Package wave evaluates the four base periodic waveforms.
//
// Each kind is its own struct carrying only the parameters that kind
// actually uses; all of them satisfy Waveform. Evaluation is pure: the
// same (waveform, t) pair always yields the same value, and degenerate
// configuration (non-positive frequency, zero amplitude) degrades to a
// flat zero signal instead of failing.
package wave

import "math"

// Kind identifies a waveform family.
type Kind int

const (
	KindSine Kind = iota + 1
	KindSquare
	KindTriangle
	KindSawtooth
)

func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindSquare:
		return "square"
	case KindTriangle:
		return "triangle"
	case KindSawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Waveform is a configured periodic signal source.
type Waveform interface {
	Kind() Kind
	Frequency() float64
	Amplitude() float64
	// Sample returns the instantaneous value at time t (seconds).
	Sample(t float64) float64
}

// Sine is amplitude * sin(2πft + phase).
type Sine struct {
	Freq  float64 // Hz
	Amp   float64
	Phase float64 // radians
}

func (s Sine) Kind() Kind         { return KindSine }
func (s Sine) Frequency() float64 { return s.Freq }
func (s Sine) Amplitude() float64 { return s.Amp }

func (s Sine) Sample(t float64) float64 {
	return s.Amp * math.Sin(2*math.Pi*s.Freq*t+s.Phase)
}

// Square alternates between +Amp and -Amp. Duty is the fraction of each
// period spent at +Amp and is clamped to [0,1] by NewSquare.
type Square struct {
	Freq float64
	Amp  float64
	Duty float64
}

// NewSquare builds a Square with the duty cycle clamped into [0,1].
func NewSquare(freq, amp, duty float64) Square {
	if duty < 0 {
		duty = 0
	}
	if duty > 1 {
		duty = 1
	}
	return Square{Freq: freq, Amp: amp, Duty: duty}
}

func (s Square) Kind() Kind         { return KindSquare }
func (s Square) Frequency() float64 { return s.Freq }
func (s Square) Amplitude() float64 { return s.Amp }

func (s Square) Sample(t float64) float64 {
	if s.Freq <= 0 {
		return 0
	}
	period := 1 / s.Freq
	pos := math.Mod(t, period) / period
	if pos < s.Duty {
		return s.Amp
	}
	return -s.Amp
}

// Triangle ramps linearly from -Amp up to +Amp over the first half of
// each period and back down over the second half.
type Triangle struct {
	Freq float64
	Amp  float64
}

func (tr Triangle) Kind() Kind         { return KindTriangle }
func (tr Triangle) Frequency() float64 { return tr.Freq }
func (tr Triangle) Amplitude() float64 { return tr.Amp }

func (tr Triangle) Sample(t float64) float64 {
	if tr.Freq <= 0 {
		return 0
	}
	period := 1 / tr.Freq
	pos := math.Mod(t, period) / period
	if pos < 0.5 {
		return -tr.Amp + 4*tr.Amp*pos
	}
	return 3*tr.Amp - 4*tr.Amp*pos
}

// Sawtooth ramps from -Amp to +Amp over one period, then jumps back.
// Amp is the "jump amplitude" in user-facing terms. Slope is accepted
// and echoed as configuration but does not affect sampling.
type Sawtooth struct {
	Freq  float64
	Amp   float64
	Slope float64
}

func (s Sawtooth) Kind() Kind         { return KindSawtooth }
func (s Sawtooth) Frequency() float64 { return s.Freq }
func (s Sawtooth) Amplitude() float64 { return s.Amp }

func (s Sawtooth) Sample(t float64) float64 {
	if s.Freq <= 0 {
		return 0
	}
	period := 1 / s.Freq
	frac := math.Mod(t, period) / period
	return -s.Amp + 2*s.Amp*frac
}

// Normalized returns w's instantaneous value divided by its configured
// amplitude, the modulating input for AM/FM/PWM. A zero amplitude
// normalizes to exactly 0 rather than dividing by zero.
func Normalized(w Waveform, t float64) float64 {
	amp := w.Amplitude()
	if amp == 0 {
		return 0
	}
	return w.Sample(t) / amp
}
