package canvas

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCanvas_PaintCircleBraille(t *testing.T) {
	c := New(40, 20, DefaultBounds, DefaultBounds, MarkerBraille)
	c.Paint(NewCircle(ColorLightGreen))

	// (50, 0) lands in column 37, row 10.
	r, col := c.Cell(37, 10)
	if r == ' ' || r < brailleBase || r > brailleBase+0xFF {
		t.Fatalf("cell(37,10)=%q", r)
	}
	if col != ColorLightGreen {
		t.Fatalf("color=%v", col)
	}

	if r, _ := c.Cell(20, 10); r != ' ' {
		t.Fatalf("center cell painted: %q", r)
	}

	painted := 0
	for row := 0; row < 20; row++ {
		for cc := 0; cc < 40; cc++ {
			if r, _ := c.Cell(cc, row); r != ' ' {
				painted++
			}
		}
	}
	if painted < 40 {
		t.Fatalf("only %d cells painted", painted)
	}
}

func TestCanvas_MarkersAndBounds(t *testing.T) {
	b := [2]float64{-5, 5}
	c := New(11, 11, b, b, MarkerASCII)
	c.Paint(Points{Coords: []Coordinate{{0, 0}, {100, 100}, {-6, 0}}})

	if r, _ := c.Cell(5, 5); r != '*' {
		t.Fatalf("center=%q", r)
	}
	for _, line := range c.Lines() {
		if n := utf8.RuneCountInString(line); n != 11 {
			t.Fatalf("line %q has %d runes", line, n)
		}
	}
	if got := strings.Count(strings.Join(c.Lines(), ""), "*"); got != 1 {
		t.Fatalf("painted %d cells, want 1", got)
	}

	c.Reset()
	if r, _ := c.Cell(5, 5); r != ' ' {
		t.Fatalf("after reset=%q", r)
	}

	d := New(3, 3, b, b, MarkerBlock)
	d.Paint(Points{Coords: []Coordinate{{5, 5}}})
	if r, _ := d.Cell(2, 0); r != '█' {
		t.Fatalf("top-right=%q", r)
	}
}

func TestCanvas_LaterShapeWins(t *testing.T) {
	b := [2]float64{-1, 1}
	c := New(3, 3, b, b, MarkerDot)
	c.Paint(
		Points{Coords: []Coordinate{{0, 0}}, Stroke: ColorRed},
		Points{Coords: []Coordinate{{0, 0}}, Stroke: ColorBlue},
	)
	r, col := c.Cell(1, 1)
	if r != '•' || col != ColorBlue {
		t.Fatalf("cell=%q %v", r, col)
	}
}

func TestCanvas_Clamping(t *testing.T) {
	c := New(0, -3, [2]float64{1, 1}, [2]float64{2, -2}, MarkerBraille)
	cols, rows := c.Size()
	if cols != 1 || rows != 1 {
		t.Fatalf("size=%dx%d", cols, rows)
	}
	x, y := c.Bounds()
	if x != DefaultBounds || y != DefaultBounds {
		t.Fatalf("bounds=%v %v", x, y)
	}
	if r, col := c.Cell(-1, 7); r != ' ' || col != ColorReset {
		t.Fatalf("out of range cell=%q %v", r, col)
	}
}

func TestCanvas_WriteANSI(t *testing.T) {
	c := New(30, 12, DefaultBounds, DefaultBounds, MarkerBraille)
	c.Paint(NewCircle(ColorLightRed), Line{X1: -50, X2: 50})

	var plain bytes.Buffer
	if err := c.WriteANSI(&plain, false); err != nil {
		t.Fatalf("WriteANSI: %v", err)
	}
	if got, want := plain.String(), strings.Join(c.Lines(), "\n"); got != want {
		t.Fatalf("plain output differs:\n%s\nwant\n%s", got, want)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escapes")
	}

	var colored bytes.Buffer
	if err := c.WriteANSI(&colored, true); err != nil {
		t.Fatalf("WriteANSI: %v", err)
	}
	if !strings.Contains(colored.String(), "\x1b[38;5;9m") || strings.Contains(colored.String(), "\x1b[91m") {
		t.Fatalf("light red not written as a 256-color escape: %q", colored.String())
	}
	if strings.Count(colored.String(), "\n") != 11 {
		t.Fatalf("row count mismatch")
	}
}

func TestCanvas_WriteANSIHighIndex(t *testing.T) {
	c := New(3, 1, [2]float64{0, 2}, [2]float64{0, 1}, MarkerASCII)
	c.Paint(Points{Coords: []Coordinate{{0, 0}}, Stroke: Indexed(202)}, Points{Coords: []Coordinate{{2, 0}}, Stroke: ColorCyan})

	var buf bytes.Buffer
	if err := c.WriteANSI(&buf, true); err != nil {
		t.Fatalf("WriteANSI: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"\x1b[38;5;202m*", "\x1b[38;5;6m*"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestCanvas_PaintSkipsNaN(t *testing.T) {
	c := New(4, 4, DefaultBounds, DefaultBounds, MarkerBlock)
	nan := math.NaN()
	c.Paint(Points{Coords: []Coordinate{{nan, 0}, {0, nan}, {nan, nan}, {math.Inf(1), 0}}, Stroke: ColorRed})
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if r, _ := c.Cell(col, row); r != ' ' {
				t.Fatalf("cell %d,%d painted with %q", col, row, r)
			}
		}
	}
}
