// Package render turns a dense value sequence into a fixed-height ASCII
// character grid with a horizontal zero-reference line.
package render

import (
	"strings"

	werrors "github.com/dygy/wavegen/internal/errors"
)

// DefaultRows is the canvas height used by the tool's plots. Odd so the
// zero line lands on an exact row.
const DefaultRows = 21

const (
	signalMarker = '*'
	axisMarker   = '-'
	blank        = ' '
)

// Canvas is one rendered character grid. It is built fresh per Render
// call, backed by a single contiguous buffer, and never retained.
type Canvas struct {
	rows  int
	cols  int
	cells []rune
}

// Rows reports the canvas height.
func (c *Canvas) Rows() int { return c.rows }

// Cols reports the canvas width.
func (c *Canvas) Cols() int { return c.cols }

// At returns the marker at (row, col), row 0 at the top.
func (c *Canvas) At(row, col int) rune {
	return c.cells[row*c.cols+col]
}

// Lines returns the grid as equal-length text lines, top to bottom.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	for r := 0; r < c.rows; r++ {
		lines[r] = string(c.cells[r*c.cols : (r+1)*c.cols])
	}
	return lines
}

// String joins the lines with trailing newlines, ready to print.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.cols + 1) * c.rows)
	for _, line := range c.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Render maps values onto a rows × len(values) grid, one signal marker
// per column, and overlays the zero-reference row with axis markers
// wherever no signal marker already sits. amp is the display amplitude:
// +amp maps to the top row, -amp to the bottom. A zero amp renders the
// whole trace flat on the center row rather than failing.
func Render(values []float64, rows int, amp float64) (*Canvas, error) {
	cols := len(values)
	if cols == 0 {
		return nil, werrors.NewRenderError(cols, rows, werrors.ErrEmptySequence)
	}
	if rows <= 0 {
		return nil, werrors.NewRenderError(cols, rows, werrors.ErrBadDimensions)
	}

	c := &Canvas{rows: rows, cols: cols, cells: make([]rune, rows*cols)}
	for i := range c.cells {
		c.cells[i] = blank
	}

	for col, v := range values {
		c.cells[rowFor(v, amp, rows)*cols+col] = signalMarker
	}

	// The zero line goes through the same mapping; for any nonzero amp
	// it resolves to the exact midpoint row. Signal markers win.
	axis := rowFor(0, amp, rows)
	for col := 0; col < cols; col++ {
		if c.cells[axis*cols+col] == blank {
			c.cells[axis*cols+col] = axisMarker
		}
	}

	return c, nil
}

// rowFor maps a value to a row index, row 0 representing +amp.
func rowFor(value, amp float64, rows int) int {
	frac := 0.5 // flat centered fallback for zero amplitude
	if amp != 0 {
		frac = (amp - value) / (2 * amp)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	row := int(frac*float64(rows-1) + 0.5)
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return row
}
