// Package modulation applies AM, FM and PWM transforms over a carrier,
// driven by the normalized value of a base waveform.
package modulation

import (
	"math"

	"github.com/dygy/wavegen/internal/wave"
)

// Scheme identifies a modulation type.
type Scheme int

const (
	SchemeAM Scheme = iota + 1
	SchemeFM
	SchemePWM
)

func (s Scheme) String() string {
	switch s {
	case SchemeAM:
		return "am"
	case SchemeFM:
		return "fm"
	case SchemePWM:
		return "pwm"
	default:
		return "unknown"
	}
}

// Modulator produces a modulated signal value for a point in time.
type Modulator interface {
	Scheme() Scheme
	Sample(t float64) float64
	// DisplayAmplitude is the peak amplitude the renderer should scale
	// the plot to for this scheme.
	DisplayAmplitude() float64
	// Period is one period of the driving (carrier) frequency, falling
	// back to 1 second when that frequency is not positive.
	Period() float64
}

// AM scales a sinusoidal carrier by the envelope 1 + Index·normalized(base).
type AM struct {
	CarrierAmp  float64
	CarrierFreq float64 // Hz
	Index       float64 // dimensionless gain on the normalized base
	Base        wave.Waveform
}

func (m AM) Scheme() Scheme { return SchemeAM }

func (m AM) Sample(t float64) float64 {
	env := 1 + m.Index*wave.Normalized(m.Base, t)
	carrier := math.Sin(2 * math.Pi * m.CarrierFreq * t)
	return m.CarrierAmp * env * carrier
}

func (m AM) DisplayAmplitude() float64 {
	return m.CarrierAmp * (1 + math.Abs(m.Index))
}

func (m AM) Period() float64 { return fallbackPeriod(m.CarrierFreq) }

// FM offsets the carrier's phase by Beta·normalized(base). This is the
// simplified non-integrating phase approximation, not a true frequency
// integral; the instantaneous phase is 2πfc·t + β·x(t).
type FM struct {
	CarrierAmp  float64
	CarrierFreq float64 // Hz
	Beta        float64 // radians of deviation per unit normalized signal
	Base        wave.Waveform
}

func (m FM) Scheme() Scheme { return SchemeFM }

func (m FM) Sample(t float64) float64 {
	phase := 2*math.Pi*m.CarrierFreq*t + m.Beta*wave.Normalized(m.Base, t)
	return m.CarrierAmp * math.Sin(phase)
}

func (m FM) DisplayAmplitude() float64 { return m.CarrierAmp }

func (m FM) Period() float64 { return fallbackPeriod(m.CarrierFreq) }

// PWM compares the normalized base against a triangular reference at
// SwitchFreq: output is +Amp while the base is above the reference,
// -Amp otherwise.
type PWM struct {
	SwitchFreq float64 // Hz
	Amp        float64 // output level for the high state
	Base       wave.Waveform
}

func (m PWM) Scheme() Scheme { return SchemePWM }

func (m PWM) Sample(t float64) float64 {
	period := m.Period()
	frac := math.Mod(t, period) / period
	ref := -1 + 2*frac
	if wave.Normalized(m.Base, t) > ref {
		return m.Amp
	}
	return -m.Amp
}

func (m PWM) DisplayAmplitude() float64 { return m.Amp }

func (m PWM) Period() float64 { return fallbackPeriod(m.SwitchFreq) }

func fallbackPeriod(freq float64) float64 {
	if freq > 0 {
		return 1 / freq
	}
	return 1
}
