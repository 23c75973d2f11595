// Package app wires the canvas scene to a HAL: it reads keys, keeps the view state and
// redraws the framebuffer when something changed.
package app

import (
	"errors"
	"fmt"
	"strings"

	"tcanvas/canvas"
	"tcanvas/hal"
)

// Mode selects how the scene reaches the framebuffer.
type Mode uint8

const (
	// ModePlot draws shapes as pixels.
	ModePlot Mode = iota
	// ModeTerm rasterizes shapes to a character grid shown through a terminal emulator.
	ModeTerm
)

var ErrUnknownMode = errors.New("unknown mode")

func (m Mode) String() string {
	switch m {
	case ModePlot:
		return "plot"
	case ModeTerm:
		return "term"
	default:
		return "invalid"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plot", "":
		return ModePlot, nil
	case "term":
		return ModeTerm, nil
	}
	return ModePlot, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Config struct {
	Mode Mode
	// Color is the circle color.
	Color canvas.Color
	// Marker is used in ModeTerm. The terminal font has no braille glyphs, so
	// canvas.MarkerASCII reads best there.
	Marker canvas.Marker
	Grid   bool

	// Extra shapes are drawn above the circle.
	Extra []canvas.Shape
}

// New starts the scene with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Marker: canvas.MarkerASCII})
}

// NewWithConfig builds the scene and returns its step function. Each call handles pending
// input and redraws if needed; it returns an error if drawing panicked.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newScene(h, cfg).step
}
