package render

import (
	"bytes"
	"unicode/utf8"

	"tcanvas/canvas"
	"tcanvas/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	termFontHeight = 10
	termFontOffset = 6
)

// Terminal is a VT100-style text terminal drawn on a framebuffer.
type Terminal struct {
	fb hal.Framebuffer
	d  *Display
	t  *tinyterm.Terminal

	font      *tinyfont.Font
	fontWidth int16
	buf       bytes.Buffer
}

func NewTerminal(fb hal.Framebuffer) *Terminal {
	t := &Terminal{
		fb:   fb,
		d:    NewDisplay(fb),
		font: &proggy.TinySZ8pt7b,
	}
	_, outboxWidth := tinyfont.LineWidth(t.font, "0")
	t.fontWidth = int16(outboxWidth)
	t.Reset()
	return t
}

// Size returns the text grid size in cells.
func (t *Terminal) Size() (cols, rows int) {
	w, h := t.d.Size()
	if t.fontWidth <= 0 {
		return 0, 0
	}
	return int(w / t.fontWidth), int(h / termFontHeight)
}

// CellSize returns the pixel size of one text cell.
func (t *Terminal) CellSize() (w, h int16) {
	return t.fontWidth, termFontHeight
}

// Reset clears the screen and homes the cursor.
func (t *Terminal) Reset() {
	t.t = tinyterm.NewTerminal(t.d)
	t.t.Configure(&tinyterm.Config{
		Font:       t.font,
		FontHeight: termFontHeight,
		FontOffset: termFontOffset,
	})
	if t.fb != nil {
		t.fb.ClearRGB(0, 0, 0)
	}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.t.Write(p)
}

// Show clears the terminal and prints title followed by the canvas rows. The canvas should
// leave one row free for the title or the terminal will scroll.
//
// tinyterm draws one glyph per byte, so non-ASCII marker glyphs are replaced by '*'.
func (t *Terminal) Show(c *canvas.Canvas, title string) error {
	t.Reset()

	t.buf.Reset()
	if title != "" {
		t.buf.WriteString("\x1b[1m")
		t.buf.WriteString(title)
		t.buf.WriteString("\x1b[0m\n")
	}
	if err := c.WriteANSI(&t.buf, true); err != nil {
		return err
	}
	if _, err := t.t.Write(asciiOnly(t.buf.Bytes())); err != nil {
		return err
	}
	return t.d.Display()
}

// asciiOnly turns "\n" into "\r\n" and replaces every multi-byte rune with '*'.
func asciiOnly(b []byte) []byte {
	out := make([]byte, 0, len(b)+len(b)/8)
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		switch {
		case r == '\n':
			out = append(out, '\r', '\n')
		case n == 1:
			out = append(out, b[0])
		default:
			out = append(out, '*')
		}
		b = b[n:]
	}
	return out
}
