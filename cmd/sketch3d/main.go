package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"sketch3d/internal/config"
	"sketch3d/internal/game"
	"sketch3d/internal/logx"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the TOML config file")
	verbose := flag.Bool("v", false, "log at debug level")
	writeConfig := flag.Bool("write-config", false, "write the default config to -config and exit")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*configPath) {
			logx.Log(os.Chdir(execDir))
		}
	}

	level := new(slog.LevelVar)
	logx.Setup(os.Stderr, level)

	if *writeConfig {
		if logx.Log(config.Save(*configPath, config.Default())) != nil {
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Warn("using default config", "error", err)
	}
	if l, err := cfg.Level(); err == nil {
		level.Set(l)
	}
	if *verbose {
		level.Set(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := game.New(cfg)
	if !*verbose {
		app.LogLevel = level
	}
	if updates, err := config.Watch(ctx, *configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("config hot reload disabled", "error", err)
		}
	} else {
		app.WatchConfig(updates)
	}

	slog.Info("starting", "config", *configPath, "ground_size", cfg.GroundSize)
	app.Run(ctx)
}
