package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tcanvas/canvas"
	"tcanvas/internal/log"
)

var (
	debug    bool
	colorArg string

	rootCmd = &cobra.Command{
		Use:           "shapectl",
		Short:         "Inspect and render tcanvas shapes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.EnableDebug = debug
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&colorArg, "color", "lightcyan", "circle color: a name or a 0-255 palette index")

	rootCmd.AddCommand(printCmd, pointsCmd, statsCmd, exportCmd, snapshotCmd, versionCmd)
}

// circleFromFlags builds the circle drawn by every subcommand.
func circleFromFlags() (canvas.Circle, error) {
	c, err := canvas.ParseColor(colorArg)
	if err != nil {
		return canvas.Circle{}, errors.Wrap(err, "--color")
	}
	return canvas.NewCircle(c), nil
}
