// SPDX-License-Identifier: MIT

// Command matshell is an interactive shell over a fixed set of named
// uint32 matrices.
//
// Usage:
//
//	matshell [-config matshell.toml] [-data-dir dir] [-seed n] [-log-level warn] [-no-bootstrap]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/command"
	"github.com/katalvlaran/matshell/config"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
	"github.com/katalvlaran/matshell/shell"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	fs := flag.NewFlagSet("matshell", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	dataDir := fs.String("data-dir", "", "directory for read/write (overrides config)")
	seed := fs.Int64("seed", 0, "random seed, 0 seeds from the clock (overrides config)")
	logLevel := fs.String("log-level", "", "log level (overrides config)")
	noBootstrap := fs.Bool("no-bootstrap", false, "skip creating the startup matrix")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during init. Terminating")
		log.WithError(err).Error("load config")
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.DataDir = *dataDir
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if *noBootstrap {
		cfg.Bootstrap.Enabled = false
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("invalid log level %s, defaulting to warn", cfg.LogLevel)
		log.SetLevel(log.WarnLevel)
		cfg.LogLevel = "warn"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error during init. Terminating")
		log.WithError(err).Error("invalid config")
		return 1
	}

	logger := log.StandardLogger()
	reg, err := registry.New(cfg.Capacity, registry.WithLogger(logger))
	if err != nil {
		log.WithError(err).Error("create registry")
		return 1
	}
	defer func() {
		n := reg.Teardown()
		log.WithField("destroyed", n).Debug("registry torn down")
	}()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	d := command.NewDispatcher(reg, command.Options{
		Out:      os.Stdout,
		RNG:      matrix.NewRNG(cfg.Seed),
		DataDir:  cfg.DataDir,
		MaxCells: cfg.MaxCells,
		Log:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Bootstrap.Enabled {
		b := cfg.Bootstrap
		err := shell.Bootstrap(ctx, d, shell.BootstrapConfig{
			Name: b.Name, Rows: b.Rows, Cols: b.Cols,
			Start: b.Start, End: b.End,
			Log: logger,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "PROGRAM FAILED TO INIT")
			log.WithError(err).Error("bootstrap")
			return 1
		}
	}

	s := &shell.Session{
		Dispatcher: d,
		Parser:     command.Parser{MaxTokens: cfg.Parser.MaxTokens, MaxTokenLen: cfg.Parser.MaxTokenLen},
		In:         os.Stdin,
		Out:        os.Stdout,
		Prompt:     cfg.Prompt,
		Log:        logger,
	}
	if err := s.Run(ctx); errors.Is(err, context.Canceled) {
		log.Info("session interrupted")
	} else if err != nil {
		log.WithError(err).Warn("session stopped")
	}

	return 0
}
