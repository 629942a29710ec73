// Package simulator plays many matches unattended to soak-test the engine.
// Every step is checked against the dice and money accounting rules and the
// results are aggregated per seat.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/vegas/internal/game"
	"github.com/lox/vegas/internal/randutil"
)

// ErrInvariant is wrapped by every accounting violation.
var ErrInvariant = errors.New("invariant violated")

// Config controls a simulation run.
type Config struct {
	Matches    int
	Workers    int
	Players    int
	DealerDice int
	Rounds     int
	Seed       int64
	Policy     Policy
	Logger     *log.Logger
}

func (c *Config) setDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Players == 0 {
		c.Players = game.MinPlayers
	}
	if c.Rounds == 0 {
		c.Rounds = game.DefaultRounds
	}
	if c.Policy == nil {
		c.Policy = RandomPolicy{}
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// MatchResult is the outcome of one simulated match.
type MatchResult struct {
	Seed           int64
	Winner         int
	Money          []int
	Cards          []int
	Turns          int
	Casinos        int
	BlockedCasinos int
	Leftover       int
}

// Run plays cfg.Matches matches across cfg.Workers goroutines. Match i uses
// seed randutil.Derive(cfg.Seed, i), so a run is reproducible and any failing
// match can be replayed alone.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	cfg.setDefaults()
	if cfg.Matches <= 0 {
		return nil, fmt.Errorf("matches must be positive, got %d", cfg.Matches)
	}

	logger := cfg.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"matches", cfg.Matches,
		"workers", cfg.Workers,
		"players", cfg.Players,
		"policy", cfg.Policy.Name(),
		"seed", cfg.Seed)

	started := time.Now()
	results := make([]MatchResult, cfg.Matches)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Matches {
		seed := randutil.Derive(cfg.Seed, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := PlayMatch(seed, cfg)
			if err != nil {
				return fmt.Errorf("match %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			logger.Debug("Match finished", "match", i, "seed", seed, "winner", res.Winner, "turns", res.Turns)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(cfg, results, time.Since(started))
	logger.Info("Simulation complete", "matches", report.Matches, "duration", report.Duration)
	return report, nil
}

// PlayMatch plays one match with cfg's rules and policy, checking accounting
// after every placement and every settlement.
func PlayMatch(seed int64, cfg Config) (MatchResult, error) {
	cfg.setDefaults()
	rng := randutil.New(seed)

	m, err := game.NewMatch(rng, cfg.Players,
		game.WithDealerDice(cfg.DealerDice),
		game.WithRounds(cfg.Rounds),
		game.WithID(fmt.Sprintf("sim-%d", seed)))
	if err != nil {
		return MatchResult{}, err
	}

	res := MatchResult{Seed: seed}
	maxTurns := cfg.Rounds * cfg.Players * (game.RegularDicePerRound + game.DealerDicePerRound)

	for !m.IsGameComplete() {
		if res.Turns >= maxTurns {
			return res, fmt.Errorf("%w: no game end after %d turns", ErrInvariant, res.Turns)
		}
		if _, err := m.Roll(); err != nil {
			return res, err
		}
		choice := cfg.Policy.Choose(rng, m.State(), m.ValidPlacements())
		placed, err := m.Place(choice)
		if err != nil {
			return res, err
		}
		res.Turns++

		if err := CheckDiceAccounting(m.State(), cfg.DealerDice); err != nil {
			return res, err
		}
		if s := placed.Settlement; s != nil {
			if err := CheckConservation(*s); err != nil {
				return res, err
			}
			for _, c := range s.Casinos {
				res.Casinos++
				if c.Blocked {
					res.BlockedCasinos++
				}
			}
			res.Leftover += s.Leftover()
		}
	}

	winner, err := m.Winner()
	if err != nil {
		return res, err
	}
	res.Winner = winner.ID
	for _, p := range m.State().Players {
		res.Money = append(res.Money, p.Money)
		res.Cards = append(res.Cards, p.CardCount)
	}
	return res, nil
}

// CheckDiceAccounting verifies that every die in the snapshot is either
// unplaced or committed to exactly one casino.
func CheckDiceAccounting(s game.State, dealerDice int) error {
	onCasinos := make(map[int]int)
	dealerOnCasinos := 0
	for _, c := range s.Casinos {
		for _, cm := range c.Tally {
			onCasinos[cm.Player] += cm.Dice
		}
		dealerOnCasinos += c.DealerDice
	}

	dealerCommitted := 0
	for _, p := range s.Players {
		if p.RegularDice+p.CommittedRegular != game.RegularDicePerRound {
			return fmt.Errorf("%w: player %d holds %d regular dice and committed %d", ErrInvariant, p.ID, p.RegularDice, p.CommittedRegular)
		}
		if p.DealerDice+p.CommittedDealer != dealerDice {
			return fmt.Errorf("%w: player %d holds %d dealer dice and committed %d", ErrInvariant, p.ID, p.DealerDice, p.CommittedDealer)
		}
		if onCasinos[p.ID] != p.CommittedRegular {
			return fmt.Errorf("%w: player %d has %d dice on casinos but committed %d", ErrInvariant, p.ID, onCasinos[p.ID], p.CommittedRegular)
		}
		dealerCommitted += p.CommittedDealer
	}
	if dealerCommitted != dealerOnCasinos {
		return fmt.Errorf("%w: %d dealer dice on casinos but %d committed", ErrInvariant, dealerOnCasinos, dealerCommitted)
	}
	return nil
}

// CheckConservation verifies that a round paid out exactly what was stocked,
// less what is left on the stacks.
func CheckConservation(s game.Settlement) error {
	if got, want := s.Distributed()+s.Leftover(), s.Stocked(); got != want {
		return fmt.Errorf("%w: round %d paid %d with %d left over from %d stocked", ErrInvariant, s.Round, s.Distributed(), s.Leftover(), want)
	}
	for _, c := range s.Casinos {
		if c.Blocked && len(c.Awards) > 0 {
			return fmt.Errorf("%w: blocked casino %d paid %d awards", ErrInvariant, c.Casino, len(c.Awards))
		}
	}
	return nil
}
