// SPDX-License-Identifier: EPL-2.0

// Command cuemix prints the cue points of audio files and can render them as
// one crossfaded WAV.
//
//	cuemix [flags] file...
//
// Run with -h for the flag list. Every flag can also be set through a
// CUEMIX_* environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/cuemix"
	"github.com/ik5/cuemix/internal/config"
	"github.com/ik5/cuemix/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[0], os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	cancel()
	os.Exit(code)
}

// run is main without the process globals. It returns the exit code.
func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := config.Load(name, args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(stdout, name)
		return 0
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n\n", name, err)
		config.Usage(stderr, name)
		return 2
	}

	log := logger.New(logger.Config{
		Writer: stderr,
		Format: cfg.Logger.Format,
		Level:  logger.ParseLevel(cfg.Logger.Level),
	})

	analyses, err := cuemix.AnalyzeFiles(ctx, cuemix.DefaultRegistry(), cfg.Files, cfg.Detect, cfg.Workers)
	if err != nil {
		log.Error("analysis failed", "error", err)
		return 1
	}
	for _, a := range analyses {
		log.Debug("analyzed", "path", a.Path, "duration", a.Duration(), "cue", a.Cue)
	}

	if cfg.JSON {
		err = writeJSON(stdout, analyses)
	} else {
		err = writeTable(stdout, analyses)
	}
	if err != nil {
		log.Error("writing cue points", "error", err)
		return 1
	}

	if cfg.Mix.Out == "" {
		return 0
	}
	if err := renderFile(ctx, cfg.Mix, analyses, log); err != nil {
		log.Error("render failed", "out", cfg.Mix.Out, "error", err)
		return 1
	}
	return 0
}
