package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"tcanvas/app"
	"tcanvas/canvas"
	"tcanvas/hal"
	"tcanvas/internal/log"
)

func main() {
	var cfg hal.HeadlessConfig
	var mode, col, marker string
	var grid, debug bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&mode, "mode", "plot", "Scene mode: plot or term.")
	flag.StringVar(&col, "color", "lightcyan", "Circle color: a name or a 0-255 palette index.")
	flag.StringVar(&marker, "marker", "ascii", "Term mode marker: braille, dot, block or ascii.")
	flag.BoolVar(&grid, "grid", false, "Draw a grid in plot mode.")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging.")
	flag.Parse()

	log.EnableDebug = debug

	appCfg := app.Config{Grid: grid}
	var err error
	if appCfg.Mode, err = app.ParseMode(mode); err != nil {
		log.Fatalf("%v", err)
	}
	if appCfg.Color, err = canvas.ParseColor(col); err != nil {
		log.Fatalf("%v", err)
	}
	if appCfg.Marker, err = canvas.ParseMarker(marker); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debugf("config: %+v", appCfg)

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Errorln(err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}
