// oyster is a console chess game against a negamax search engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/config"
	"github.com/lgbarn/oyster-go/internal/engine"
)

func main() {
	os.Exit(run())
}

// run plays or counts as the flags ask and returns the exit status. Files
// opened for the run are closed before it returns.
func run() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "oyster: %v\n", err)
		return 2
	}
	closeLog, err := setupLogFile(cfg, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oyster: %v\n", err)
		return 1
	}
	defer closeLog()

	board, err := cfg.Game.NewBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "oyster: %v\n", err)
		return 2
	}

	if *perftDepth > 0 {
		runPerft(cfg.OutputFile, board, *perftDepth)
		return 0
	}

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oyster: %v\n", err)
		return 2
	}

	s := newSession(cfg, board, eng, os.Stdin)
	s.run()
	return 0
}

// runPerft prints the node count below each root move and the total.
func runPerft(w io.Writer, board *chess.Board, depth int) uint64 {
	var total uint64
	for _, e := range board.Divide(depth) {
		fmt.Fprintf(w, "%s: %d\n", e.Move.String(), e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return total
}
