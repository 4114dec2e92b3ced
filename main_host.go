//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"presto/app"
	"presto/hal"
)

func main() {
	cfg := app.DefaultConfig()
	var headless hal.HeadlessConfig
	flag.StringVar(&cfg.Program, "program", cfg.Program, "Scene to run: aquarium|wordclock.")
	flag.IntVar(&cfg.UTCOffset, "utc-offset", cfg.UTCOffset, "Time zone offset in whole hours.")
	flag.BoolVar(&cfg.ShowTime, "show-time", cfg.ShowTime, "Draw the clock over the aquarium.")
	flag.BoolVar(&cfg.Boring, "boring", cfg.Boring, "Word clock in white only.")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Fish simulation seed (0 = random).")
	flag.StringVar(&headless.Host.NTPServer, "ntp", hal.DefaultNTPServer, "NTP server to sync from.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, cfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(headless.Host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
