package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/vegas/internal/config"
	"github.com/lox/vegas/internal/format"
	"github.com/lox/vegas/internal/game"
	"github.com/lox/vegas/internal/randutil"
	"github.com/lox/vegas/internal/tui"
)

// PlayCmd runs an interactive match.
type PlayCmd struct {
	Config   string   `short:"c" default:"vegas.hcl" help:"Path to HCL configuration file"`
	Players  int      `short:"p" help:"Number of players (2-5), overrides the config file"`
	Names    []string `short:"n" help:"Player names in seat order"`
	NoDealer bool     `help:"Play the variant without dealer dice"`
	Seed     int64    `help:"RNG seed (0 for random)"`
	NoColor  bool     `help:"Disable colours"`
	LogFile  string   `default:"vegas.log" help:"Write logs to this file (empty to discard)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := openLogFile(c.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.LogLevel(), "vegas")

	if c.NoColor {
		tui.DisableColor()
	}

	seed := randutil.Seed(cfg.Match.Seed)
	logger.Info("Starting match", "players", cfg.Match.Players, "seed", seed)

	model := tui.New(logger, format.Default)
	opts := append(cfg.Options(),
		game.WithLogger(logger),
		game.WithSubscriber(model))
	match, err := game.NewMatch(randutil.New(seed), cfg.Match.Players, opts...)
	if err != nil {
		return err
	}
	model.Attach(match)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if match.IsGameComplete() {
		printStandings(match, logger)
	}
	return nil
}

// apply layers command line flags over the loaded configuration.
func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Players != 0 {
		cfg.Match.Players = c.Players
	}
	if len(c.Names) > 0 {
		cfg.Match.Names = c.Names
	}
	if c.NoDealer {
		zero := 0
		cfg.Match.DealerDice = &zero
	}
	if c.Seed != 0 {
		cfg.Match.Seed = c.Seed
	}
}

func printStandings(match *game.Match, logger *log.Logger) {
	for _, line := range format.Default.Standings(match.Standings()) {
		fmt.Println(line)
	}
	if w, err := match.Winner(); err == nil {
		logger.Info("Match finished", "winner", w.Name, "money", w.Money, "cards", w.CardCount)
	}
}
