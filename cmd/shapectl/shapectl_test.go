package main

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcanvas/app"
	"tcanvas/canvas"
	"tcanvas/internal/buildinfo"
)

func TestMeasure_Circle(t *testing.T) {
	s, err := measure(canvas.Collect(canvas.DefaultCircle().Points()))
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if s.Count != 500 {
		t.Fatalf("count=%d", s.Count)
	}
	if math.Abs(s.RadiusMean-50) > 0.001 || s.RadiusMin < 49.99 || s.RadiusMax > 50.01 {
		t.Fatalf("radius mean=%v range=[%v,%v]", s.RadiusMean, s.RadiusMin, s.RadiusMax)
	}
	if math.Abs(s.StepMean-0.72) > 0.0005 || s.StepStdDev > 0.001 {
		t.Fatalf("step mean=%v stddev=%v", s.StepMean, s.StepStdDev)
	}

	if _, err := measure(nil); err == nil {
		t.Fatalf("expected error for no points")
	}
}

func TestExportFiles(t *testing.T) {
	files, err := exportFiles("out/circle.png", []string{"png", ".SVG", "png"})
	if err != nil {
		t.Fatalf("exportFiles: %v", err)
	}
	if len(files) != 2 || files[0] != "out/circle.png" || files[1] != "out/circle.svg" {
		t.Fatalf("files=%v", files)
	}
	if _, err := exportFiles("x", []string{"gif"}); err == nil {
		t.Fatalf("gif accepted")
	}
	if _, err := exportFiles("", []string{"png"}); err == nil {
		t.Fatalf("empty path accepted")
	}
}

func TestNewCirclePlot_SaveSVG(t *testing.T) {
	p, err := newCirclePlot(canvas.NewCircle(canvas.ColorBlue), "test")
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	path := filepath.Join(t.TempDir(), "c.svg")
	if err := p.Save(200, 200, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || !bytes.Contains(b, []byte("<svg")) {
		t.Fatalf("svg missing: err=%v len=%d", err, len(b))
	}
}

func TestPrintCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"print", "--cols", "30", "--rows", "12", "--marker", "ascii", "--color", "red"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.Contains(out.String(), "*") {
		t.Fatalf("nothing drawn:\n%s", out.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("colors written to a buffer")
	}
}

func TestPointsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"points", "--limit", "2"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "x,y\n50,0\n49.9961,0.6283\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
	out.Reset()
	rootCmd.SetArgs([]string{"points", "--limit", "1000"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 501 {
		t.Fatalf("got %d lines for a limit past the end", n)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := out.String(), buildinfo.String()+"\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	img, err := snapshot(context.Background(), app.Config{Color: canvas.ColorLightRed}, 160, 120)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	red := color.RGBA{R: 0xFF, A: 0xFF}
	found := false
	for y := 0; y < 120 && !found; y++ {
		for x := 0; x < 160; x++ {
			if img.RGBAAt(x, y) == red {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("circle missing from snapshot")
	}

	path := filepath.Join(t.TempDir(), "s.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil || decoded.Bounds().Dx() != 160 {
		t.Fatalf("decode err=%v", err)
	}
}
