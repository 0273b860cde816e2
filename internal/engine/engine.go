// Package engine selects moves for the computer side of a game. The Oyster
// engine runs a fixed-depth negamax search with alpha-beta pruning over a
// material, piece-square and mobility evaluation; the Random engine picks
// uniformly among the legal moves.
package engine

import (
	"fmt"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/config"
)

// Engine is a move-selection strategy.
//
// BestMove must only be called when the side to move has a legal move;
// callers check Outcome first. Engines panic otherwise.
type Engine interface {
	Name() string
	BestMove(b *chess.Board) chess.Move
}

// New builds the engine described by cfg.
func New(cfg *config.Config) (Engine, error) {
	if err := cfg.Search.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Search.Engine {
	case config.EngineRandom:
		return NewRandom(cfg.Search.Seed), nil
	default:
		return NewOyster(
			WithDepth(cfg.Search.Depth),
			WithWorkers(cfg.Search.Workers),
			WithLog(cfg.LogFile, cfg.Verbosity),
		), nil
	}
}

func noMoves(name string, b *chess.Board) string {
	return fmt.Sprintf("engine %s: no legal moves in %s", name, b.FEN())
}
