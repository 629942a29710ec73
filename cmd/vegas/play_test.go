package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vegas/internal/config"
)

func TestPlayCmdApply(t *testing.T) {
	cfg := config.Default()
	cmd := &PlayCmd{Players: 3, Names: []string{"Ann"}, NoDealer: true, Seed: 9}
	cmd.apply(cfg)

	assert.Equal(t, 3, cfg.Match.Players)
	assert.Equal(t, []string{"Ann"}, cfg.Match.Names)
	require.NotNil(t, cfg.Match.DealerDice)
	assert.Zero(t, *cfg.Match.DealerDice)
	assert.Equal(t, int64(9), cfg.Match.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestPlayCmdApplyKeepsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Match.Players = 4
	(&PlayCmd{}).apply(cfg)

	assert.Equal(t, 4, cfg.Match.Players)
	assert.Equal(t, 4, *cfg.Match.DealerDice)
}
