// Package config provides configuration for the oyster engine and its
// command-line front end.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Sub-configurations
	Search *SearchConfig
	Game   *GameConfig

	Verbosity int // 0=nothing, 1=search summaries, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Verbosity:  0,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and engine moves are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostic stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}
