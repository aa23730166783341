// Package main is the entry point for the headless hoopshot simulator.
//
// hoopsim replays an input script against the basketball game and prints
// a summary of the session.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/hoopshot/internal/config"
	"github.com/Faultbox/hoopshot/internal/engine/input"
	"github.com/Faultbox/hoopshot/internal/game"
	"github.com/Faultbox/hoopshot/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hoopshot simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	var script *input.Script
	if cfg.Sim.Script != "" {
		var err error
		if script, err = input.LoadScript(cfg.Sim.Script); err != nil {
			return err
		}
		logger.Info("script loaded",
			zap.String("path", cfg.Sim.Script),
			zap.Int("lastFrame", script.LastFrame()))
	}

	s, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := s.Run(ctx, script)
	printSummary(out, sum)
	return err
}

func printSummary(w io.Writer, sum game.Summary) {
	fmt.Fprintf(w, "Ball:        %s\n", sum.Ball)
	fmt.Fprintf(w, "Frames:      %d\n", sum.Frames)
	fmt.Fprintf(w, "Throws:      %d (%d assisted)\n", sum.Throws, sum.Assisted)
	fmt.Fprintf(w, "Scores:      %d\n", sum.Scores)
	fmt.Fprintf(w, "Wins:        %d\n", sum.Wins)
	fmt.Fprintf(w, "Final score: %d\n", sum.FinalScore)
	fmt.Fprintf(w, "Collisions:  %d\n", sum.Collisions)
	fmt.Fprintf(w, "Bounces:     %d\n", sum.Bounces)
	fmt.Fprintf(w, "Landings:    %d\n", sum.Landings)
	if sum.Quit {
		fmt.Fprintln(w, "Stopped by quit event")
	}
}
