package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMarker is returned by ParseMarker for names it does not recognize.
var ErrUnknownMarker = errors.New("unknown marker")

// Marker selects how painted points are drawn in a cell.
type Marker uint8

const (
	// MarkerBraille packs 2x4 points per cell using the U+2800 braille block.
	MarkerBraille Marker = iota
	MarkerDot
	MarkerBlock
	// MarkerASCII draws '*', for fonts without the unicode glyphs.
	MarkerASCII
)

const brailleBase = 0x2800

// brailleBits[row][col] is the dot bit for a sub-cell position.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func (m Marker) String() string {
	switch m {
	case MarkerBraille:
		return "braille"
	case MarkerDot:
		return "dot"
	case MarkerBlock:
		return "block"
	case MarkerASCII:
		return "ascii"
	default:
		return "invalid"
	}
}

// resolution returns how many points a single cell holds horizontally and vertically.
func (m Marker) resolution() (dx, dy int) {
	if m == MarkerBraille {
		return 2, 4
	}
	return 1, 1
}

func (m Marker) glyph() rune {
	switch m {
	case MarkerDot:
		return '•'
	case MarkerBlock:
		return '█'
	default:
		return '*'
	}
}

// ParseMarker accepts the names returned by Marker.String.
func ParseMarker(s string) (Marker, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "braille", "":
		return MarkerBraille, nil
	case "dot":
		return MarkerDot, nil
	case "block":
		return MarkerBlock, nil
	case "ascii":
		return MarkerASCII, nil
	}
	return MarkerBraille, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
}
