package config

import (
	"fmt"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/errors"
)

// ColourChoice is the side the human plays.
type ColourChoice int

const (
	PlayWhite ColourChoice = iota
	PlayBlack
	PlayRandom // decided by the seeded source at start
)

// ParseColourChoice accepts "w", "b" or "r" (or the full words).
func ParseColourChoice(s string) (ColourChoice, error) {
	switch s {
	case "w", "white":
		return PlayWhite, nil
	case "b", "black":
		return PlayBlack, nil
	case "r", "random":
		return PlayRandom, nil
	}
	return PlayWhite, errors.Wrapf(errors.ErrInvalidConfig, "colour %q", s)
}

// String returns the flag form of the choice.
func (c ColourChoice) String() string {
	switch c {
	case PlayBlack:
		return "b"
	case PlayRandom:
		return "r"
	default:
		return "w"
	}
}

// GameConfig holds settings for the interactive game.
type GameConfig struct {
	// FEN is the starting position; empty means the standard one
	FEN string

	// Player is the side the human plays
	Player ColourChoice

	// ShowBoard prints the board before every human move
	ShowBoard bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Player:    PlayWhite,
		ShowBoard: true,
	}
}

// Validate checks that the starting position parses.
func (g *GameConfig) Validate() error {
	if g.Player < PlayWhite || g.Player > PlayRandom {
		return errors.Wrapf(errors.ErrInvalidConfig, "player colour %d", g.Player)
	}
	if g.FEN == "" {
		return nil
	}
	if _, err := chess.FromFEN(g.FEN); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// NewBoard returns the configured starting position.
func (g *GameConfig) NewBoard() (*chess.Board, error) {
	if g.FEN == "" {
		return chess.NewInitialBoard(), nil
	}
	return chess.FromFEN(g.FEN)
}
