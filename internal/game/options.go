package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

const (
	MinPlayers = 2
	MaxPlayers = 5

	// RegularDicePerRound is how many regular dice each player gets per round.
	RegularDicePerRound = 8

	// DealerDicePerRound is the dealer dice capacity in the standard variant.
	DealerDicePerRound = 4

	// DefaultRounds is the number of rounds in a standard game.
	DefaultRounds = 4
)

// Option configures a Match during creation.
type Option func(*matchConfig)

type matchConfig struct {
	dealerDice  int
	rounds      int
	names       []string
	clock       quartz.Clock
	logger      *log.Logger
	id          string
	subscribers []EventSubscriber
}

func defaultConfig() *matchConfig {
	return &matchConfig{
		dealerDice: DealerDicePerRound,
		rounds:     DefaultRounds,
	}
}

// WithDealerDice sets each player's dealer dice per round. Only 0 (the
// variant without dealer dice) and DealerDicePerRound are supported.
func WithDealerDice(n int) Option {
	return func(c *matchConfig) {
		c.dealerDice = n
	}
}

// WithRounds sets the number of rounds before the game completes.
func WithRounds(n int) Option {
	return func(c *matchConfig) {
		c.rounds = n
	}
}

// WithNames names the players in seat order. Seats without a name get a
// default one.
func WithNames(names ...string) Option {
	return func(c *matchConfig) {
		c.names = names
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(c *matchConfig) {
		c.clock = clock
	}
}

// WithLogger sets the match logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *matchConfig) {
		c.logger = logger
	}
}

// WithID sets the match ID instead of generating one.
func WithID(id string) Option {
	return func(c *matchConfig) {
		c.id = id
	}
}

// WithSubscriber registers an event subscriber. It may be given more than once.
func WithSubscriber(sub EventSubscriber) Option {
	return func(c *matchConfig) {
		c.subscribers = append(c.subscribers, sub)
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
