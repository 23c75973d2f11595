package canvas

import "math"

// DefaultBounds frames the built-in circle with a small margin.
var DefaultBounds = [2]float64{-55, 55}

type cell struct {
	dots  uint8
	r     rune
	color Color
}

// Canvas is a grid of character cells that shapes are painted onto.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	cols, rows int
	xb, yb     [2]float64
	marker     Marker
	cells      []cell
}

// New returns an empty canvas of cols x rows cells covering xBounds horizontally and
// yBounds vertically. Sizes below 1 are raised to 1; empty or inverted bounds are replaced
// by DefaultBounds.
func New(cols, rows int, xBounds, yBounds [2]float64, m Marker) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if !validBounds(xBounds) {
		xBounds = DefaultBounds
	}
	if !validBounds(yBounds) {
		yBounds = DefaultBounds
	}
	return &Canvas{
		cols:   cols,
		rows:   rows,
		xb:     xBounds,
		yb:     yBounds,
		marker: m,
		cells:  make([]cell, cols*rows),
	}
}

func validBounds(b [2]float64) bool {
	if math.IsNaN(b[0]) || math.IsNaN(b[1]) || math.IsInf(b[0], 0) || math.IsInf(b[1], 0) {
		return false
	}
	return b[0] < b[1]
}

func (c *Canvas) Size() (cols, rows int)    { return c.cols, c.rows }
func (c *Canvas) Bounds() (x, y [2]float64) { return c.xb, c.yb }
func (c *Canvas) Marker() Marker            { return c.marker }

// Reset clears every cell.
func (c *Canvas) Reset() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Paint draws shapes in order. Points outside the bounds are dropped. When two shapes hit
// the same cell the later color wins.
func (c *Canvas) Paint(shapes ...Shape) {
	dx, dy := c.marker.resolution()
	resW := c.cols * dx
	resH := c.rows * dy
	w := c.xb[1] - c.xb[0]
	h := c.yb[1] - c.yb[0]

	for _, s := range shapes {
		if s == nil {
			continue
		}
		col := s.Color()
		it := s.Points()
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			// NaN fails every comparison, so it needs its own check.
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			if p.X < c.xb[0] || p.X > c.xb[1] || p.Y < c.yb[0] || p.Y > c.yb[1] {
				continue
			}
			px := int(math.Round((p.X - c.xb[0]) / w * float64(resW-1)))
			py := int(math.Round((c.yb[1] - p.Y) / h * float64(resH-1)))
			c.set(px, py, dx, dy, col)
		}
	}
}

func (c *Canvas) set(px, py, dx, dy int, col Color) {
	cx, cy := px/dx, py/dy
	if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
		return
	}
	ce := &c.cells[cy*c.cols+cx]
	if c.marker == MarkerBraille {
		ce.dots |= brailleBits[py%dy][px%dx]
		ce.r = rune(brailleBase) + rune(ce.dots)
	} else {
		ce.r = c.marker.glyph()
	}
	ce.color = col
}

// Cell returns the rune and color at col, row. Blank and out of range cells are ' ' with
// ColorReset.
func (c *Canvas) Cell(col, row int) (rune, Color) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return ' ', ColorReset
	}
	ce := c.cells[row*c.cols+col]
	if ce.r == 0 {
		return ' ', ColorReset
	}
	return ce.r, ce.color
}

// Lines returns the grid as plain text, one string of exactly cols runes per row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	buf := make([]rune, c.cols)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			buf[col], _ = c.Cell(col, row)
		}
		out[row] = string(buf)
	}
	return out
}
