// Package config loads match settings from an HCL file, with environment
// variables taking precedence over file values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/vegas/internal/game"
)

// Config is the complete configuration file.
type Config struct {
	Match *MatchConfig `hcl:"match,block"`
	Log   *LogConfig   `hcl:"log,block"`
}

// MatchConfig holds the rules variant and table setup.
type MatchConfig struct {
	Players    int      `hcl:"players,optional" env:"PLAYERS"`
	DealerDice *int     `hcl:"dealer_dice,optional" env:"DEALER_DICE"`
	Rounds     int      `hcl:"rounds,optional" env:"ROUNDS"`
	Seed       int64    `hcl:"seed,optional" env:"SEED"`
	Names      []string `hcl:"names,optional" env:"NAMES"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `hcl:"level,optional" env:"LOG_LEVEL"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "VEGAS_"

// Default returns the configuration used when no file is present.
func Default() *Config {
	dealer := game.DealerDicePerRound
	return &Config{
		Match: &MatchConfig{
			Players:    game.MinPlayers,
			DealerDice: &dealer,
			Rounds:     game.DefaultRounds,
		},
		Log: &LogConfig{Level: "info"},
	}
}

// Load reads filename, applies defaults for missing values and then applies
// environment overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg, err := loadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Match == nil {
		c.Match = def.Match
	}
	if c.Match.Players == 0 {
		c.Match.Players = def.Match.Players
	}
	if c.Match.DealerDice == nil {
		c.Match.DealerDice = def.Match.DealerDice
	}
	if c.Match.Rounds == 0 {
		c.Match.Rounds = def.Match.Rounds
	}
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func applyEnv(cfg *Config) error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(cfg.Match, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.ParseWithOptions(cfg.Log, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the configuration against the supported rules.
func (c *Config) Validate() error {
	m := c.Match
	if m.Players < game.MinPlayers || m.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, m.Players)
	}
	if m.DealerDice != nil && *m.DealerDice != 0 && *m.DealerDice != game.DealerDicePerRound {
		return fmt.Errorf("dealer_dice must be 0 or %d, got %d", game.DealerDicePerRound, *m.DealerDice)
	}
	if m.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", m.Rounds)
	}
	if len(m.Names) > m.Players {
		return fmt.Errorf("%d names given for %d players", len(m.Names), m.Players)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Options converts the match settings into game options.
func (c *Config) Options() []game.Option {
	opts := []game.Option{game.WithRounds(c.Match.Rounds)}
	if c.Match.DealerDice != nil {
		opts = append(opts, game.WithDealerDice(*c.Match.DealerDice))
	}
	if len(c.Match.Names) > 0 {
		opts = append(opts, game.WithNames(c.Match.Names...))
	}
	return opts
}
