package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tcanvas/canvas"
	"tcanvas/internal/log"
	"tcanvas/render"
)

var (
	printCols    int
	printRows    int
	printMarker  string
	printNoColor bool
	printAxes    bool

	printCmd = &cobra.Command{
		Use:   "print",
		Short: "Draw the circle on a text canvas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			circle, err := circleFromFlags()
			if err != nil {
				return err
			}
			m, err := canvas.ParseMarker(printMarker)
			if err != nil {
				return errors.Wrap(err, "--marker")
			}

			c := textCanvas(printCols, printRows, m)
			shapes := []canvas.Shape{circle}
			if printAxes {
				xb, yb := c.Bounds()
				shapes = append([]canvas.Shape{
					canvas.Line{X1: xb[0], X2: xb[1], Stroke: canvas.ColorDarkGray, Steps: 4 * printCols},
					canvas.Line{Y1: yb[0], Y2: yb[1], Stroke: canvas.ColorDarkGray, Steps: 4 * printRows},
				}, shapes...)
			}
			c.Paint(shapes...)

			out := cmd.OutOrStdout()
			colorize := !printNoColor && out == os.Stdout && log.IsTerminal(os.Stdout)
			log.Debugf("print: %dx%d marker=%s color=%s colorize=%v", printCols, printRows, m, circle.Color(), colorize)
			if err := c.WriteANSI(out, colorize); err != nil {
				return errors.Wrap(err, "write canvas")
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
)

// textCanvas returns a canvas framing the circle. Terminal cells are about twice as tall
// as they are wide, so the bounds are fitted as if each cell were 1x2.
func textCanvas(cols, rows int, m canvas.Marker) *canvas.Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	xb, yb := render.FitBounds(canvas.DefaultBounds, canvas.DefaultBounds, int16(cols), int16(rows*2))
	return canvas.New(cols, rows, xb, yb, m)
}

func init() {
	printCmd.Flags().IntVar(&printCols, "cols", 80, "canvas width in cells")
	printCmd.Flags().IntVar(&printRows, "rows", 40, "canvas height in cells")
	printCmd.Flags().StringVar(&printMarker, "marker", "braille", "braille, dot, block or ascii")
	printCmd.Flags().BoolVar(&printNoColor, "no-color", false, "never emit color escapes")
	printCmd.Flags().BoolVar(&printAxes, "axes", false, "draw the x and y axes")
}
