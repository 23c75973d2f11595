package main

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"tcanvas/canvas"
	"tcanvas/internal/log"
)

var (
	exportOut     string
	exportFormats []string
	exportSize    float64
	exportTitle   string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Save the circle as png, svg or pdf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			circle, err := circleFromFlags()
			if err != nil {
				return err
			}
			files, err := exportFiles(exportOut, exportFormats)
			if err != nil {
				return err
			}

			var g errgroup.Group
			for _, f := range files {
				f := f
				g.Go(func() error {
					p, err := newCirclePlot(circle, exportTitle)
					if err != nil {
						return err
					}
					size := vg.Length(exportSize) * vg.Centimeter
					if err := p.Save(size, size, f); err != nil {
						return errors.Wrapf(err, "save %s", f)
					}
					log.Infof("wrote %s", f)
					return nil
				})
			}
			return g.Wait()
		},
	}
)

// exportFiles expands a base path into one file name per format.
func exportFiles(base string, formats []string) ([]string, error) {
	if base == "" {
		return nil, errors.New("--out is empty")
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	seen := map[string]bool{}
	var files []string
	for _, f := range formats {
		f = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(f), "."))
		switch f {
		case "png", "svg", "pdf":
		default:
			return nil, errors.Errorf("unsupported format %q", f)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, base+"."+f)
	}
	if len(files) == 0 {
		return nil, errors.New("no formats selected")
	}
	return files, nil
}

// circleXYs adapts a shape's points to plotter.XYer.
func circleXYs(s canvas.Shape) plotter.XYs {
	pts := canvas.Collect(s.Points())
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}

func newCirclePlot(s canvas.Shape, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = canvas.DefaultBounds[0], canvas.DefaultBounds[1]
	p.Y.Min, p.Y.Max = canvas.DefaultBounds[0], canvas.DefaultBounds[1]
	p.Add(plotter.NewGrid())

	l, err := plotter.NewLine(circleXYs(s))
	if err != nil {
		return nil, errors.Wrap(err, "circle line")
	}
	l.LineStyle.Color = s.Color().RGBA(color.RGBA{A: 0xFF})
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l)
	return p, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "circle", "output path without extension")
	exportCmd.Flags().StringSliceVar(&exportFormats, "format", []string{"png"}, "png, svg and/or pdf")
	exportCmd.Flags().Float64Var(&exportSize, "size", 10, "image side in centimeters")
	exportCmd.Flags().StringVar(&exportTitle, "title", "circle r=50, 500 points", "plot title")
}
