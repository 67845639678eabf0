package modulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dygy/wavegen/internal/wave"
)

func TestAM(t *testing.T) {
	base := wave.Sine{Freq: 1, Amp: 1}
	m := AM{CarrierAmp: 1, CarrierFreq: 1, Index: 0.5, Base: base}

	t.Run("ZeroAtOrigin", func(t *testing.T) {
		// base 0 -> envelope 1, carrier sin(0)=0 -> output 0
		require.InDelta(t, 0, m.Sample(0), 1e-12)
	})

	t.Run("Formula", func(t *testing.T) {
		at := 0.13
		env := 1 + 0.5*math.Sin(2*math.Pi*at)
		want := env * math.Sin(2*math.Pi*at)
		require.InDelta(t, want, m.Sample(at), 1e-12)
	})

	t.Run("DisplayAmplitude", func(t *testing.T) {
		assert.InDelta(t, 1.5, m.DisplayAmplitude(), 1e-12)
		neg := AM{CarrierAmp: 2, Index: -0.75}
		assert.InDelta(t, 3.5, neg.DisplayAmplitude(), 1e-12)
	})
}

func TestFMIsPhaseOffsetNotIntegral(t *testing.T) {
	base := wave.Triangle{Freq: 2, Amp: 4}
	m := FM{CarrierAmp: 2, CarrierFreq: 3, Beta: 1.5, Base: base}

	for _, at := range []float64{0, 0.07, 0.31, 0.9} {
		norm := base.Sample(at) / 4
		want := 2 * math.Sin(2*math.Pi*3*at+1.5*norm)
		require.InDelta(t, want, m.Sample(at), 1e-12, "t=%v", at)
	}
	assert.InDelta(t, 2, m.DisplayAmplitude(), 1e-12)
}

func TestPWMComparator(t *testing.T) {
	base := wave.Sine{Freq: 1, Amp: 1}
	m := PWM{SwitchFreq: 1, Amp: 3, Base: base}

	// t=0: normalized base 0, triangle ref -1 -> high
	assert.Equal(t, 3.0, m.Sample(0))
	// t=0.75: normalized base sin(3π/2) = -1, ref = 0.5 -> low
	assert.Equal(t, -3.0, m.Sample(0.75))
}

func TestPWMZeroAmplitudeBase(t *testing.T) {
	base := wave.Sine{Freq: 1, Amp: 0}
	m := PWM{SwitchFreq: 4, Amp: 1, Base: base}
	// normalized base is exactly 0 for a zero-amplitude input; output is
	// still a well-formed square signal against the triangle reference
	assert.Equal(t, 1.0, m.Sample(0))       // ref -1 < 0
	assert.Equal(t, -1.0, m.Sample(0.9/4))  // ref 0.8 > 0
}

func TestPeriodFallback(t *testing.T) {
	base := wave.Sine{Freq: 1, Amp: 1}

	assert.Equal(t, 1.0, AM{CarrierFreq: 0, Base: base}.Period())
	assert.Equal(t, 1.0, FM{CarrierFreq: -2, Base: base}.Period())
	assert.Equal(t, 1.0, PWM{SwitchFreq: 0, Base: base}.Period())
	assert.InDelta(t, 0.02, PWM{SwitchFreq: 50, Base: base}.Period(), 1e-12)
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "am", SchemeAM.String())
	assert.Equal(t, "pwm", SchemePWM.String())
}
