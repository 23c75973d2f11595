package canvas

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// WriteANSI writes the grid to w, one row per line. With colorize set, runs of cells that
// share a color are wrapped in 256-color SGR sequences; ColorReset cells are left plain.
func (c *Canvas) WriteANSI(w io.Writer, colorize bool) error {
	bw := bufio.NewWriter(w)
	run := make([]rune, 0, c.cols)
	for row := 0; row < c.rows; row++ {
		runColor := ColorReset
		run = run[:0]
		for col := 0; col < c.cols; col++ {
			r, fg := c.Cell(col, row)
			if r == ' ' {
				fg = runColor
			}
			if fg != runColor && len(run) > 0 {
				writeRun(bw, run, runColor, colorize)
				run = run[:0]
			}
			runColor = fg
			run = append(run, r)
		}
		writeRun(bw, run, runColor, colorize)
		if row < c.rows-1 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func writeRun(w *bufio.Writer, run []rune, fg Color, colorize bool) {
	if len(run) == 0 {
		return
	}
	n, ok := fg.Index()
	if !colorize || !ok {
		w.WriteString(string(run))
		return
	}
	if n < 16 {
		// aurora switches to 30-37/90-97 below 16, which tinyterm only partly understands.
		fmt.Fprintf(w, "\x1b[38;5;%dm%s\x1b[0m", n, string(run))
		return
	}
	w.WriteString(aurora.Index(n, string(run)).String())
}
