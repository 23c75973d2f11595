package app

import (
	"fmt"
	"runtime/debug"

	"tcanvas/canvas"
	"tcanvas/hal"
	"tcanvas/render"
)

const (
	zoomStep = 1.25
	zoomMin  = 0.25
	zoomMax  = 8
	panStep  = 5.0
)

var colorCycle = []canvas.Color{
	canvas.ColorReset,
	canvas.ColorLightRed,
	canvas.ColorLightGreen,
	canvas.ColorLightYellow,
	canvas.ColorLightBlue,
	canvas.ColorLightMagenta,
	canvas.ColorLightCyan,
	canvas.ColorWhite,
}

type scene struct {
	h   hal.HAL
	cfg Config

	fb      hal.Framebuffer
	d       *render.Display
	plotter *render.Plotter
	term    *render.Terminal

	circle canvas.Circle
	center canvas.Coordinate
	zoom   float64

	seconds uint64
	dirty   bool
	failed  bool
}

func newScene(h hal.HAL, cfg Config) *scene {
	s := &scene{
		h:       h,
		cfg:     cfg,
		plotter: render.NewPlotter(),
		circle:  canvas.NewCircle(cfg.Color),
		zoom:    1,
		dirty:   true,
	}
	s.plotter.Axes = false
	if h != nil && h.Display() != nil {
		s.fb = h.Display().Framebuffer()
	}
	if s.fb != nil {
		s.d = render.NewDisplay(s.fb)
	}
	s.logf("scene: mode=%s color=%s marker=%s", cfg.Mode, cfg.Color, cfg.Marker)
	return s
}

func (s *scene) step() (err error) {
	if s.failed {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			s.failed = true
			stack := debug.Stack()
			s.logf("scene panic: %v", r)
			drawPanic(s.fb, r, stack)
			err = fmt.Errorf("scene panic: %v", r)
		}
	}()

	s.readClock()
	s.handleKeys()
	if s.dirty {
		s.dirty = false
		return s.render()
	}
	return nil
}

func (s *scene) readClock() {
	if s.h == nil || s.h.Time() == nil {
		return
	}
	select {
	case sec := <-s.h.Time().Seconds():
		if sec != s.seconds {
			s.seconds = sec
			s.dirty = true
		}
	default:
	}
}

func (s *scene) handleKeys() {
	if s.h == nil || s.h.Input() == nil || s.h.Input().Keyboard() == nil {
		return
	}
	ch := s.h.Input().Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				s.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (s *scene) handleKey(ev hal.KeyEvent) {
	step := panStep / s.zoom
	switch ev.Code {
	case hal.KeyTab:
		s.toggleMode()
		return
	case hal.KeyUp:
		s.center.Y += step
	case hal.KeyDown:
		s.center.Y -= step
	case hal.KeyLeft:
		s.center.X -= step
	case hal.KeyRight:
		s.center.X += step
	case hal.KeyHome:
		s.resetView()
	case hal.KeyUnknown:
		switch ev.Rune {
		case '\t':
			s.toggleMode()
			return
		case 'c':
			s.nextColor()
		case 'g':
			s.cfg.Grid = !s.cfg.Grid
		case '+', '=':
			s.zoom = min(s.zoom*zoomStep, zoomMax)
		case '-':
			s.zoom = max(s.zoom/zoomStep, zoomMin)
		case 'r':
			s.resetView()
		default:
			return
		}
	default:
		return
	}
	s.dirty = true
}

func (s *scene) toggleMode() {
	if s.cfg.Mode == ModePlot {
		s.cfg.Mode = ModeTerm
	} else {
		s.cfg.Mode = ModePlot
	}
	s.logf("scene: mode=%s", s.cfg.Mode)
	s.dirty = true
}

func (s *scene) nextColor() {
	next := colorCycle[0]
	for i, c := range colorCycle {
		if c == s.circle.Stroke {
			next = colorCycle[(i+1)%len(colorCycle)]
			break
		}
	}
	s.circle.Stroke = next
	s.logf("scene: color=%s", next)
}

func (s *scene) resetView() {
	s.center = canvas.Coordinate{}
	s.zoom = 1
}

// bounds returns the visible area before aspect correction.
func (s *scene) bounds() (x, y [2]float64) {
	half := canvas.DefaultBounds[1] / s.zoom
	x = [2]float64{s.center.X - half, s.center.X + half}
	y = [2]float64{s.center.Y - half, s.center.Y + half}
	return x, y
}

func (s *scene) shapes(xb, yb [2]float64) []canvas.Shape {
	out := []canvas.Shape{
		canvas.Line{X1: xb[0], X2: xb[1], Stroke: canvas.ColorDarkGray, Steps: 256},
		canvas.Line{Y1: yb[0], Y2: yb[1], Stroke: canvas.ColorDarkGray, Steps: 256},
		s.circle,
	}
	return append(out, s.cfg.Extra...)
}

func (s *scene) caption() string {
	return fmt.Sprintf("circle %s  zoom %.2fx  %ds", s.circle.Color(), s.zoom, s.seconds)
}

func (s *scene) render() error {
	if s.d == nil {
		return nil
	}
	xb, yb := s.bounds()

	if s.cfg.Mode == ModeTerm {
		return s.renderTerm(xb, yb)
	}

	vp := render.FullViewport(s.d)
	xb, yb = render.FitBounds(xb, yb, vp.W, vp.H)
	s.plotter.Grid = s.cfg.Grid
	s.plotter.Draw(s.d, vp, xb, yb, s.caption(), s.shapes(xb, yb)...)
	return s.d.Display()
}

func (s *scene) renderTerm(xb, yb [2]float64) error {
	if s.term == nil {
		s.term = render.NewTerminal(s.fb)
	}
	cols, rows := s.term.Size()
	if cols <= 0 || rows <= 1 {
		return nil
	}
	rows--

	// Cells are taller than wide; fit in pixels so the circle stays round.
	cw, ch := s.term.CellSize()
	xb, yb = render.FitBounds(xb, yb, int16(cols)*cw, int16(rows)*ch)

	c := canvas.New(cols, rows, xb, yb, s.cfg.Marker)
	c.Paint(s.shapes(xb, yb)...)
	return s.term.Show(c, s.caption())
}

func (s *scene) logf(format string, args ...any) {
	if s.h == nil || s.h.Logger() == nil {
		return
	}
	s.h.Logger().WriteLineString(fmt.Sprintf(format, args...))
}
