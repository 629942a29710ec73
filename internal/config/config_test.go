package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vegas/internal/game"
	"github.com/lox/vegas/internal/randutil"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vegas.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, game.MinPlayers, cfg.Match.Players)
	require.NotNil(t, cfg.Match.DealerDice)
	assert.Equal(t, game.DealerDicePerRound, *cfg.Match.DealerDice)
	assert.Equal(t, game.DefaultRounds, cfg.Match.Rounds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
match {
  players     = 3
  dealer_dice = 0
  rounds      = 2
  seed        = 42
  names       = ["Ann", "Bo", "Cy"]
}

log {
  level = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Match.Players)
	assert.Equal(t, 0, *cfg.Match.DealerDice)
	assert.Equal(t, 2, cfg.Match.Rounds)
	assert.Equal(t, int64(42), cfg.Match.Seed)
	assert.Equal(t, []string{"Ann", "Bo", "Cy"}, cfg.Match.Names)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
match {
  players = 4
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Match.Players)
	assert.Equal(t, game.DealerDicePerRound, *cfg.Match.DealerDice)
	assert.Equal(t, game.DefaultRounds, cfg.Match.Rounds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, `match { players = `)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `match { colour = "red" }`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
match {
  players = 3
  rounds  = 2
}
`)
	t.Setenv("VEGAS_PLAYERS", "5")
	t.Setenv("VEGAS_DEALER_DICE", "0")
	t.Setenv("VEGAS_SEED", "7")
	t.Setenv("VEGAS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Match.Players)
	assert.Equal(t, 2, cfg.Match.Rounds)
	assert.Equal(t, 0, *cfg.Match.DealerDice)
	assert.Equal(t, int64(7), cfg.Match.Seed)
	assert.Equal(t, log.WarnLevel, cfg.LogLevel())
}

func TestEnvInvalidValue(t *testing.T) {
	t.Setenv("VEGAS_PLAYERS", "lots")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	two := 2
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "too few players", mutate: func(c *Config) { c.Match.Players = 1 }, wantErr: "players"},
		{name: "too many players", mutate: func(c *Config) { c.Match.Players = 6 }, wantErr: "players"},
		{name: "unsupported dealer dice", mutate: func(c *Config) { c.Match.DealerDice = &two }, wantErr: "dealer_dice"},
		{name: "no rounds", mutate: func(c *Config) { c.Match.Rounds = 0 }, wantErr: "rounds"},
		{name: "too many names", mutate: func(c *Config) { c.Match.Names = []string{"a", "b", "c"} }, wantErr: "names"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOptionsBuildAMatch(t *testing.T) {
	cfg := Default()
	cfg.Match.Players = 3
	zero := 0
	cfg.Match.DealerDice = &zero
	cfg.Match.Rounds = 1
	cfg.Match.Names = []string{"Ann"}

	m, err := game.NewMatch(randutil.New(1), cfg.Match.Players, cfg.Options()...)
	require.NoError(t, err)

	s := m.State()
	assert.Equal(t, 1, s.Rounds)
	assert.Equal(t, "Ann", s.Players[0].Name)
	assert.Zero(t, s.Players[0].DealerDice)
}
