package canvas

import (
	"errors"
	"image/color"
	"testing"
)

func TestColor_Index(t *testing.T) {
	if _, ok := ColorReset.Index(); ok {
		t.Fatalf("reset has an index")
	}
	if n, ok := ColorRed.Index(); !ok || n != 1 {
		t.Fatalf("red index=%d ok=%v", n, ok)
	}
	if n, ok := Indexed(255).Index(); !ok || n != 255 {
		t.Fatalf("255 index=%d ok=%v", n, ok)
	}
	if n, ok := ColorWhite.Index(); !ok || n != 15 {
		t.Fatalf("white index=%d ok=%v", n, ok)
	}
}

func TestColor_RGBA(t *testing.T) {
	fb := color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}
	if got := ColorReset.RGBA(fb); got != fb {
		t.Fatalf("reset=%v", got)
	}
	if got := ColorLightRed.RGBA(fb); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("lightred=%v", got)
	}
	// 196 is pure red in the 6x6x6 cube.
	if got := Indexed(196).RGBA(fb); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("196=%v", got)
	}
	if got := Indexed(232).RGBA(fb); got != (color.RGBA{R: 8, G: 8, B: 8, A: 0xFF}) {
		t.Fatalf("232=%v", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"":           ColorReset,
		"reset":      ColorReset,
		"Red":        ColorRed,
		"light-blue": ColorLightBlue,
		"grey":       ColorGray,
		"39":         Indexed(39),
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Fatalf("ParseColor(%q)=%v,%v want %v", in, got, err, want)
		}
	}

	if _, err := ParseColor("chartreuse"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("err=%v", err)
	}
	if _, err := ParseColor("256"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("256 err=%v", err)
	}
}

func TestColor_String(t *testing.T) {
	if s := ColorLightCyan.String(); s != "lightcyan" {
		t.Fatalf("s=%q", s)
	}
	if s := Indexed(100).String(); s != "color(100)" {
		t.Fatalf("s=%q", s)
	}
	c, err := ParseColor(ColorMagenta.String())
	if err != nil || c != ColorMagenta {
		t.Fatalf("round trip=%v %v", c, err)
	}
}
