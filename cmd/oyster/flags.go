// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/oyster-go/internal/config"
	"github.com/lgbarn/oyster-go/internal/errors"
)

var (
	// Position and side
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	colour    = flag.String("colour", "w", "Side you play: w, b or r (random)")
	noBoard   = flag.Bool("noboard", false, "Don't draw the board before each of your moves")

	// Engine options
	engineName = flag.String("engine", string(config.EngineOyster), "Engine: oyster or random")
	depth      = flag.Int("depth", config.DefaultDepth, "Search depth in plies")
	workers    = flag.Int("workers", 1, "Goroutines searching root moves in parallel")
	seed       = flag.Int64("seed", 1, "Seed for the random engine and random colour choice")

	// Utilities
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N from the position and exit")

	// Diagnostics
	verbose = flag.Int("v", 0, "Verbosity: 0 quiet, 1 search summaries, 2 per-move scores")
	logFile = flag.String("logfile", "", "Write diagnostics to this file (default: stderr)")

	help = flag.Bool("h", false, "Show help")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	player, err := config.ParseColourChoice(*colour)
	if err != nil {
		return err
	}

	cfg.Game.FEN = *fenString
	cfg.Game.Player = player
	cfg.Game.ShowBoard = !*noBoard

	cfg.Search.Engine = config.EngineKind(*engineName)
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.Seed = *seed

	cfg.Verbosity = *verbose
	return cfg.Validate()
}

// setupLogFile points cfg's diagnostic stream at the file at path, if any.
// The returned func closes it.
func setupLogFile(cfg *config.Config, path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating log file %s", path)
	}
	cfg.LogFile = file
	return func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "oyster: closing log file: %v\n", err)
		}
	}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `oyster - play chess against a small search engine

Usage: oyster [options]

Enter moves in algebraic notation (Nf3, exd5, e8=Q, O-O) or long form
(g1f3, e7e8q). Commands: undo, moves, fen, board, help, quit.

Options:
`)
	flag.PrintDefaults()
}
