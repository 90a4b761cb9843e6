package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"wetterm/audio"
	"wetterm/config"
	"wetterm/engine"
	"wetterm/weather"
)

const refreshInterval = 5 * time.Minute

func main() {
	simulate := flag.String("simulate", "", "simulate a weather condition (clear, rain, drizzle, snow, thunderstorm, ...)")
	night := flag.Bool("night", false, "simulate night time (moon, stars, fireflies)")
	leaves := flag.Bool("leaves", false, "enable falling autumn leaves")
	sound := flag.Bool("sound", false, "enable thunder sound")
	lat := flag.Float64("lat", 0, "override latitude")
	lon := flag.Float64("lon", 0, "override longitude")
	flag.Parse()

	cfgPath, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config dir: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *lat != 0 {
		cfg.Location.Latitude = *lat
	}
	if *lon != 0 {
		cfg.Location.Longitude = *lon
	}
	if *leaves {
		cfg.Leaves = true
	}
	if *sound {
		cfg.Sound = true
	}

	opts := engine.Options{
		Leaves:   cfg.Leaves,
		Imperial: cfg.Units == "imperial",
		Location: weather.Location{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		},
	}

	if *simulate != "" {
		cond, err := weather.ParseCondition(*simulate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		snap := weather.NewSnapshot(cond, !*night, 20.0)
		opts.Simulate = &snap
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		poller := weather.NewPoller(weather.NewProvider(), opts.Location, refreshInterval)
		poller.Start(ctx)
		opts.Weather = poller.Results()
	}

	var thunder *audio.Thunder
	if cfg.Sound {
		// non-fatal: the scene runs silently without a speaker
		thunder, _ = audio.NewThunder()
		if thunder.Ready() {
			opts.OnThunder = thunder.Rumble
			defer thunder.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// restore the terminal on panic before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()
	defer screen.Fini()

	engine.NewApp(screen, opts).Run()
}
