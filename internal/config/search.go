package config

import "github.com/lgbarn/oyster-go/internal/errors"

// EngineKind names a move-selection strategy.
type EngineKind string

const (
	EngineOyster EngineKind = "oyster" // negamax with alpha-beta
	EngineRandom EngineKind = "random" // uniform over legal moves
)

// DefaultDepth is the search depth in plies used when none is given.
const DefaultDepth = 2

// SearchConfig holds settings for engine move selection.
type SearchConfig struct {
	// Engine selects the strategy
	Engine EngineKind

	// Depth is the fixed search depth in plies
	Depth int

	// Workers is the number of goroutines searching root moves; 1 searches
	// sequentially on the caller's board
	Workers int

	// Seed seeds the random engine
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Engine:  EngineOyster,
		Depth:   DefaultDepth,
		Workers: 1,
		Seed:    1,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	switch s.Engine {
	case EngineOyster, EngineRandom:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown engine %q", s.Engine)
	}
	if s.Depth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "search depth %d < 1", s.Depth)
	}
	if s.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d < 1", s.Workers)
	}
	return nil
}
