package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/time-waster/app"
	"github.com/soocke/time-waster/config"
)

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Config file (defaults when absent), then command-line overrides.
	cfg, cfgErr := config.Load(flags.ConfigPath)
	flags.Apply(cfg)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config unusable, using defaults", "path", flags.ConfigPath, "error", cfgErr)
	}

	application := app.NewApp("Time Waster Tracker", cfg, logger)
	application.Start()
}
