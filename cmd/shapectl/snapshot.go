package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"tcanvas/app"
	"tcanvas/canvas"
	"tcanvas/hal"
	"tcanvas/internal/buildinfo"
)

var (
	snapOut    string
	snapWidth  int
	snapHeight int
	snapMode   string
	snapMarker string
	snapGrid   bool

	snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Render the scene off-screen and save it as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			circle, err := circleFromFlags()
			if err != nil {
				return err
			}
			cfg := app.Config{Color: circle.Color(), Grid: snapGrid}
			if cfg.Mode, err = app.ParseMode(snapMode); err != nil {
				return errors.Wrap(err, "--mode")
			}
			if cfg.Marker, err = canvas.ParseMarker(snapMarker); err != nil {
				return errors.Wrap(err, "--marker")
			}

			img, err := snapshot(cmd.Context(), cfg, snapWidth, snapHeight)
			if err != nil {
				return err
			}
			return writePNG(snapOut, img)
		},
	}
)

// snapshot draws one frame of the scene and stamps the build id in the bottom-right corner.
func snapshot(ctx context.Context, cfg app.Config, width, height int) (*image.RGBA, error) {
	h := hal.NewHost(width, height)
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }
	if err := hal.RunHeadlessHost(ctx, h, newApp, hal.HeadlessConfig{Hz: 1000, Ticks: 1}); err != nil {
		return nil, errors.Wrap(err, "render scene")
	}
	img := h.Framebuffer().Snapshot()

	label := "tcanvas " + buildinfo.Short()
	face := basicfont.Face7x13
	b := img.Bounds()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}),
		Face: face,
	}
	w := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(b.Max.X-4) - w,
		Y: fixed.I(b.Max.Y - 4),
	}
	d.DrawString(label)
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "snapshot.png", "output PNG path")
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 320, "framebuffer width")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 240, "framebuffer height")
	snapshotCmd.Flags().StringVar(&snapMode, "mode", "plot", "plot or term")
	snapshotCmd.Flags().StringVar(&snapMarker, "marker", "ascii", "term mode marker")
	snapshotCmd.Flags().BoolVar(&snapGrid, "grid", false, "draw a grid in plot mode")
}
