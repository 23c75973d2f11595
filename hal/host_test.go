package hal

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"
)

func TestMemoryFramebuffer_ClearAndSnapshot(t *testing.T) {
	fb := NewMemoryFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}

	fb.ClearRGB(0xFF, 0x00, 0xFF)
	if got := PixelAt(fb, 3, 2); got != (color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("pixel=%v", got)
	}

	img := fb.Snapshot()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("snapshot pixel=%v", got)
	}

	if got := PixelAt(fb, 4, 0); got != (color.RGBA{}) {
		t.Fatalf("out of range=%v", got)
	}

	_ = fb.Present()
	_ = fb.Present()
	if fb.Presents() != 2 {
		t.Fatalf("presents=%d", fb.Presents())
	}
}

func TestRGB565_PrimaryRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{
		{R: 0xFF}, {G: 0xFF}, {B: 0xFF}, {R: 0xFF, G: 0xFF, B: 0xFF}, {},
	} {
		r, g, b := UnpackRGB565(PackRGB565(c.R, c.G, c.B))
		if r != c.R || g != c.G || b != c.B {
			t.Fatalf("%v -> %d,%d,%d", c, r, g, b)
		}
	}
}

func TestHost_InjectKey(t *testing.T) {
	h := NewHost(0, 0)
	if h.Framebuffer().Width() != defaultWidth || h.Framebuffer().Height() != defaultHeight {
		t.Fatalf("size=%dx%d", h.Framebuffer().Width(), h.Framebuffer().Height())
	}
	if !h.InjectKey(KeyEvent{Press: true, Rune: 'c'}) {
		t.Fatalf("inject failed")
	}
	select {
	case ev := <-h.Input().Keyboard().Events():
		if ev.Rune != 'c' || !ev.Press {
			t.Fatalf("ev=%+v", ev)
		}
	default:
		t.Fatalf("no event")
	}
}

func TestRunHeadless_StopsAfterTicks(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		if h.Display().Framebuffer().Width() != 64 {
			t.Errorf("width=%d", h.Display().Framebuffer().Width())
		}
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5, Width: 64, Height: 32})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if steps != 5 {
		t.Fatalf("steps=%d", steps)
	}
}

func TestRunHeadless_StepErrorAndCancel(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v", err)
	}
}
