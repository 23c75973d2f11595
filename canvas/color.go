package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned by ParseColor for names it does not recognize.
var ErrUnknownColor = errors.New("unknown color")

// Color is a terminal color: either "reset" (the terminal default) or an xterm 256-color
// palette index. The zero value is ColorReset.
type Color uint16

const (
	ColorReset Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorDarkGray
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorWhite
)

var colorNames = [...]string{
	"reset",
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"gray",
	"darkgray",
	"lightred",
	"lightgreen",
	"lightyellow",
	"lightblue",
	"lightmagenta",
	"lightcyan",
	"white",
}

// Indexed returns the xterm palette color n.
func Indexed(n uint8) Color {
	return Color(n) + 1
}

// Index returns the xterm palette index of c. It returns false for ColorReset.
func (c Color) Index() (uint8, bool) {
	if c == ColorReset || c > 256 {
		return 0, false
	}
	return uint8(c - 1), true
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	if n, ok := c.Index(); ok {
		return "color(" + strconv.Itoa(int(n)) + ")"
	}
	return "invalid"
}

// RGBA resolves c through the xterm palette. ColorReset resolves to fallback.
func (c Color) RGBA(fallback color.RGBA) color.RGBA {
	n, ok := c.Index()
	if !ok {
		return fallback
	}
	return xtermRGBA(n)
}

// ParseColor accepts a color name ("red", "lightblue", "reset") or a decimal palette index.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	if name == "" || name == "default" {
		return ColorReset, nil
	}
	if name == "grey" {
		name = "gray"
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	if v, err := strconv.ParseUint(name, 10, 8); err == nil {
		return Indexed(uint8(v)), nil
	}
	return ColorReset, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

var systemColors = [16]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x80, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x80, B: 0x00, A: 0xFF},
	{R: 0x80, G: 0x80, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0x80, A: 0xFF},
	{R: 0x80, G: 0x00, B: 0x80, A: 0xFF},
	{R: 0x00, G: 0x80, B: 0x80, A: 0xFF},
	{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF},
	{R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

var cubeLevels = [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}

func xtermRGBA(n uint8) color.RGBA {
	switch {
	case n < 16:
		return systemColors[n]
	case n < 232:
		i := n - 16
		return color.RGBA{
			R: cubeLevels[i/36],
			G: cubeLevels[(i/6)%6],
			B: cubeLevels[i%6],
			A: 0xFF,
		}
	default:
		v := 8 + (n-232)*10
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}
}
