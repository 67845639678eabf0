package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/dygy/wavegen/internal/errors"
)

func TestRenderAllZero(t *testing.T) {
	values := make([]float64, 12)
	c, err := Render(values, DefaultRows, 1)
	require.NoError(t, err)

	// every column sits on the single reference row; the axis marker
	// never shows because signal markers take priority
	mid := 10
	for col := 0; col < 12; col++ {
		for row := 0; row < DefaultRows; row++ {
			got := c.At(row, col)
			if row == mid {
				assert.Equal(t, '*', got, "row %d col %d", row, col)
			} else {
				assert.Equal(t, ' ', got, "row %d col %d", row, col)
			}
		}
	}
}

func TestRenderZeroAmplitudeFallback(t *testing.T) {
	values := []float64{-5, 0, 3, 100}
	c, err := Render(values, 21, 0)
	require.NoError(t, err)

	// amp=0 forces frac=0.5 for every value: everything lands on row 10
	for col := range values {
		assert.Equal(t, '*', c.At(10, col))
	}
	for _, line := range c.Lines()[:10] {
		assert.Equal(t, strings.Repeat(" ", len(values)), line)
	}
}

func TestRenderExtremesAndClamping(t *testing.T) {
	c, err := Render([]float64{1, -1, 0, 2, -2}, 21, 1)
	require.NoError(t, err)

	assert.Equal(t, '*', c.At(0, 0), "+amp maps to the top row")
	assert.Equal(t, '*', c.At(20, 1), "-amp maps to the bottom row")
	assert.Equal(t, '*', c.At(10, 2), "zero maps to the midpoint")
	assert.Equal(t, '*', c.At(0, 3), "overshoot clamps to the top")
	assert.Equal(t, '*', c.At(20, 4), "undershoot clamps to the bottom")
}

func TestRenderAxisRow(t *testing.T) {
	c, err := Render([]float64{1, -1}, 5, 1)
	require.NoError(t, err)

	lines := c.Lines()
	assert.Equal(t, "* ", lines[0])
	assert.Equal(t, "--", lines[2], "axis fills the midpoint row")
	assert.Equal(t, " *", lines[4])
}

func TestRenderSinePlacement(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 100)
	}
	c, err := Render(values, DefaultRows, 1)
	require.NoError(t, err)

	assert.Equal(t, '*', c.At(10, 0), "zero crossing on the axis row")
	assert.Equal(t, '*', c.At(0, 25), "positive peak on the top row")
	assert.Equal(t, '*', c.At(20, 75), "negative peak on the bottom row")
}

func TestRenderShape(t *testing.T) {
	c, err := Render(make([]float64, 100), 21, 1)
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 21)
	for _, line := range lines {
		assert.Len(t, line, 100)
	}
	assert.Equal(t, strings.Join(lines, "\n")+"\n", c.String())
}

func TestRenderMalformedInput(t *testing.T) {
	t.Run("EmptySequence", func(t *testing.T) {
		_, err := Render(nil, 21, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, werrors.ErrEmptySequence)

		var re *werrors.RenderError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, 0, re.Cols)
	})

	t.Run("NonPositiveRows", func(t *testing.T) {
		_, err := Render([]float64{1}, 0, 1)
		require.ErrorIs(t, err, werrors.ErrBadDimensions)
		_, err = Render([]float64{1}, -3, 1)
		require.ErrorIs(t, err, werrors.ErrBadDimensions)
	})
}
