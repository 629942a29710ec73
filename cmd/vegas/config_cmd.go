package main

import (
	"fmt"

	"github.com/lox/vegas/internal/config"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	Check ConfigCheckCmd `cmd:"" help:"Validate a configuration file and print the effective settings"`
}

// ConfigCheckCmd loads and validates a configuration file.
type ConfigCheckCmd struct {
	File string `arg:"" type:"existingfile" help:"HCL configuration file"`
}

func (c *ConfigCheckCmd) Run() error {
	cfg, err := config.Load(c.File)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	m := cfg.Match
	dealer := 0
	if m.DealerDice != nil {
		dealer = *m.DealerDice
	}
	fmt.Printf("players:     %d\n", m.Players)
	fmt.Printf("dealer dice: %d\n", dealer)
	fmt.Printf("rounds:      %d\n", m.Rounds)
	if m.Seed != 0 {
		fmt.Printf("seed:        %d\n", m.Seed)
	}
	if len(m.Names) > 0 {
		fmt.Printf("names:       %v\n", m.Names)
	}
	fmt.Printf("log level:   %s\n", cfg.Log.Level)
	return nil
}
