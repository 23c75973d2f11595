package render

import (
	"image/color"
	"math"

	"tcanvas/canvas"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	ColorBG   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorFG   = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	ColorDim  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	ColorGrid = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	ColorAxis = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
)

// Viewport is a pixel rectangle on a display.
type Viewport struct {
	X, Y, W, H int16
}

// FullViewport covers the whole display.
func FullViewport(d *Display) Viewport {
	w, h := d.Size()
	return Viewport{W: w, H: h}
}

// Plotter draws shapes straight onto a display in pixel space.
type Plotter struct {
	Background color.RGBA
	// Foreground is used for shapes with canvas.ColorReset and for the caption.
	Foreground color.RGBA
	GridColor  color.RGBA
	AxisColor  color.RGBA

	Grid bool
	Axes bool
	// Joined connects consecutive points of a shape with line segments.
	Joined bool

	Font       tinyfont.Fonter
	FontOffset int16
}

func NewPlotter() *Plotter {
	return &Plotter{
		Background: ColorBG,
		Foreground: ColorFG,
		GridColor:  ColorGrid,
		AxisColor:  ColorAxis,
		Axes:       true,
		Joined:     true,
		Font:       &proggy.TinySZ8pt7b,
		FontOffset: 6,
	}
}

// Draw clears vp and plots shapes inside it. The bounds are widened along one axis so that
// one canvas unit is the same number of pixels in x and y.
func (p *Plotter) Draw(d *Display, vp Viewport, xb, yb [2]float64, caption string, shapes ...canvas.Shape) {
	if vp.W <= 2 || vp.H <= 2 {
		return
	}
	_ = d.FillRectangle(vp.X, vp.Y, vp.W, vp.H, p.Background)

	xb, yb = FitBounds(xb, yb, vp.W, vp.H)
	m := mapping{vp: vp, xb: xb, yb: yb}

	if p.Grid {
		p.drawGrid(d, m)
	}
	if p.Axes {
		p.drawAxes(d, m)
	}
	for _, s := range shapes {
		if s == nil {
			continue
		}
		p.drawShape(d, m, s)
	}
	if caption != "" && p.Font != nil {
		tinyfont.WriteLine(d, p.Font, vp.X+2, vp.Y+2+p.FontOffset, caption, p.Foreground)
	}
}

// FitBounds widens xb or yb so that a w x h pixel area has square units. Invalid bounds
// are replaced by canvas.DefaultBounds first.
func FitBounds(xb, yb [2]float64, w, h int16) (x, y [2]float64) {
	if !(xb[0] < xb[1]) {
		xb = canvas.DefaultBounds
	}
	if !(yb[0] < yb[1]) {
		yb = canvas.DefaultBounds
	}
	if w <= 1 || h <= 1 {
		return xb, yb
	}

	xr := xb[1] - xb[0]
	yr := yb[1] - yb[0]
	ppu := math.Min(float64(w-1)/xr, float64(h-1)/yr)

	cx := (xb[0] + xb[1]) / 2
	cy := (yb[0] + yb[1]) / 2
	hx := float64(w-1) / ppu / 2
	hy := float64(h-1) / ppu / 2
	return [2]float64{cx - hx, cx + hx}, [2]float64{cy - hy, cy + hy}
}

type mapping struct {
	vp     Viewport
	xb, yb [2]float64
}

// toPixel returns viewport-relative pixel coordinates; y grows downwards.
func (m mapping) toPixel(x, y float64) (float64, float64) {
	px := (x - m.xb[0]) / (m.xb[1] - m.xb[0]) * float64(m.vp.W-1)
	py := (m.yb[1] - y) / (m.yb[1] - m.yb[0]) * float64(m.vp.H-1)
	return px, py
}

func (p *Plotter) drawShape(d *Display, m mapping, s canvas.Shape) {
	c := s.Color().RGBA(p.Foreground)

	xMax := float64(m.vp.W - 1)
	yMax := float64(m.vp.H - 1)

	prevOK := false
	var prevX, prevY float64
	it := s.Points()
	for {
		pt, ok := it.Next()
		if !ok {
			return
		}
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			prevOK = false
			continue
		}

		curX, curY := m.toPixel(pt.X, pt.Y)
		if p.Joined && prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, 0, 0, xMax, yMax)
			if ok {
				drawLine(d,
					m.vp.X+roundInt16(cx0),
					m.vp.Y+roundInt16(cy0),
					m.vp.X+roundInt16(cx1),
					m.vp.Y+roundInt16(cy1),
					c,
				)
			}
		} else if curX >= 0 && curX <= xMax && curY >= 0 && curY <= yMax {
			d.SetPixel(m.vp.X+roundInt16(curX), m.vp.Y+roundInt16(curY), c)
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

func (p *Plotter) drawGrid(d *Display, m mapping) {
	xPxPerUnit := float64(m.vp.W-1) / (m.xb[1] - m.xb[0])
	yPxPerUnit := float64(m.vp.H-1) / (m.yb[1] - m.yb[0])
	if xPxPerUnit <= 0 || yPxPerUnit <= 0 || math.IsInf(xPxPerUnit, 0) || math.IsInf(yPxPerUnit, 0) {
		return
	}

	stepX := niceStep(40 / xPxPerUnit)
	stepY := niceStep(28 / yPxPerUnit)

	for x := math.Ceil(m.xb[0]/stepX) * stepX; x <= m.xb[1]; x += stepX {
		ix, _ := m.toPixel(x, 0)
		for y := int16(0); y < m.vp.H; y++ {
			d.SetPixel(m.vp.X+roundInt16(ix), m.vp.Y+y, p.GridColor)
		}
	}
	for y := math.Ceil(m.yb[0]/stepY) * stepY; y <= m.yb[1]; y += stepY {
		_, iy := m.toPixel(0, y)
		for x := int16(0); x < m.vp.W; x++ {
			d.SetPixel(m.vp.X+x, m.vp.Y+roundInt16(iy), p.GridColor)
		}
	}
}

func (p *Plotter) drawAxes(d *Display, m mapping) {
	ox, oy := m.toPixel(0, 0)
	if m.xb[0] <= 0 && m.xb[1] >= 0 {
		for y := int16(0); y < m.vp.H; y++ {
			d.SetPixel(m.vp.X+roundInt16(ox), m.vp.Y+y, p.AxisColor)
		}
	}
	if m.yb[0] <= 0 && m.yb[1] >= 0 {
		for x := int16(0); x < m.vp.W; x++ {
			d.SetPixel(m.vp.X+x, m.vp.Y+roundInt16(oy), p.AxisColor)
		}
	}
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	f := raw / base
	switch {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// clipLineToRect is Liang-Barsky clipping.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

// drawLine is Bresenham's line; both ends are drawn.
func drawLine(d *Display, x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := int16(-1)
	if x0 < x1 {
		sx = 1
	}
	sy := int16(-1)
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
