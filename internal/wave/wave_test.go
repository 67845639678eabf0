package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinePeriodicity(t *testing.T) {
	for _, freq := range []float64{0.5, 1, 2.5, 440} {
		s := Sine{Freq: freq, Amp: 1}
		period := 1 / freq
		for _, at := range []float64{0, 0.1, 0.37, 1.25} {
			require.InDelta(t, s.Sample(at), s.Sample(at+period), 1e-9,
				"freq=%v t=%v", freq, at)
		}
	}
}

func TestSinePhase(t *testing.T) {
	s := Sine{Freq: 1, Amp: 2, Phase: math.Pi / 2}
	require.InDelta(t, 2, s.Sample(0), 1e-12)
}

func TestSquareDutyCycle(t *testing.T) {
	t.Run("HalfDuty_FourOfEightHigh", func(t *testing.T) {
		s := NewSquare(1, 1, 0.5)
		high := 0
		for i := 0; i < 8; i++ {
			t0 := float64(i) / 8
			if s.Sample(t0) == 1 {
				high++
			}
		}
		// pos=0.5 sits exactly on the falling boundary and counts as low
		assert.Equal(t, 4, high)
	})

	t.Run("DutyClamped", func(t *testing.T) {
		assert.Equal(t, 0.0, NewSquare(1, 1, -2).Duty)
		assert.Equal(t, 1.0, NewSquare(1, 1, 7).Duty)
	})

	t.Run("DegenerateFrequency", func(t *testing.T) {
		assert.Equal(t, 0.0, NewSquare(0, 5, 0.5).Sample(0.3))
		assert.Equal(t, 0.0, NewSquare(-1, 5, 0.5).Sample(0.3))
	})
}

func TestTriangleContinuity(t *testing.T) {
	tr := Triangle{Freq: 2, Amp: 3}
	period := 0.5

	require.InDelta(t, -3, tr.Sample(0), 1e-12)
	require.InDelta(t, 3, tr.Sample(period/2), 1e-12)

	// approaching the end of the period from below tends back to -Amp
	eps := period * 1e-6
	require.InDelta(t, -3, tr.Sample(period-eps), 1e-4)
}

func TestSawtoothRamp(t *testing.T) {
	s := Sawtooth{Freq: 1, Amp: 2}

	require.InDelta(t, -2, s.Sample(0), 1e-12)
	require.InDelta(t, 2, s.Sample(1-1e-9), 1e-6)
	// discontinuous jump back at the period boundary
	require.InDelta(t, -2, s.Sample(1), 1e-6)
}

func TestSawtoothSlopeUnusedBySampling(t *testing.T) {
	a := Sawtooth{Freq: 1, Amp: 1, Slope: 1}
	b := Sawtooth{Freq: 1, Amp: 1, Slope: 9}
	assert.Equal(t, a.Sample(0.25), b.Sample(0.25))
}

func TestNormalized(t *testing.T) {
	t.Run("Bounded", func(t *testing.T) {
		s := Sine{Freq: 3, Amp: 7.5}
		for i := 0; i < 50; i++ {
			n := Normalized(s, float64(i)*0.013)
			assert.GreaterOrEqual(t, n, -1.0)
			assert.LessOrEqual(t, n, 1.0)
		}
	})

	t.Run("ZeroAmplitude", func(t *testing.T) {
		assert.Equal(t, 0.0, Normalized(Sine{Freq: 1, Amp: 0}, 0.1))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sine", KindSine.String())
	assert.Equal(t, "sawtooth", KindSawtooth.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
