package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/vegas/internal/fileutil"
	"github.com/lox/vegas/internal/format"
	"github.com/lox/vegas/internal/game"
	"github.com/lox/vegas/internal/randutil"
	"github.com/lox/vegas/internal/simulator"
)

// SimulateCmd plays matches without a front end.
type SimulateCmd struct {
	Matches  int    `default:"10000" help:"Number of matches to simulate"`
	Workers  int    `default:"0" help:"Parallel workers (0 for one per CPU)"`
	Players  int    `short:"p" default:"4" help:"Players per match (2-5)"`
	NoDealer bool   `help:"Simulate the variant without dealer dice"`
	Rounds   int    `default:"4" help:"Rounds per match"`
	Policy   string `default:"random" enum:"random,first" help:"Placement policy: random, first"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Report   string `help:"Write the report as JSON to this file"`
	Verbose  bool   `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level, "")

	policy, err := simulator.PolicyByName(c.Policy)
	if err != nil {
		return err
	}

	dealer := game.DealerDicePerRound
	if c.NoDealer {
		dealer = 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := randutil.Seed(c.Seed)
	fmt.Printf("Simulating %d matches with %d players (seed: %d)\n", c.Matches, c.Players, seed)

	report, err := simulator.Run(ctx, simulator.Config{
		Matches:    c.Matches,
		Workers:    c.Workers,
		Players:    c.Players,
		DealerDice: dealer,
		Rounds:     c.Rounds,
		Seed:       seed,
		Policy:     policy,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	for _, line := range report.Lines(format.Default) {
		fmt.Println(line)
	}

	if c.Report != "" {
		if err := fileutil.WriteJSONAtomic(c.Report, report, 0o644); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
