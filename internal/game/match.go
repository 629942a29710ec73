package game

import (
	"cmp"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/vegas/internal/matchid"
	"github.com/lox/vegas/internal/money"
)

// RollOutcome is the result of a successful Roll.
type RollOutcome struct {
	Player  int
	Regular []int
	Dealer  []int
}

// PlacementResult is the result of a successful Place.
type PlacementResult struct {
	Player  int
	Casino  int
	Regular int
	Dealer  int
	// Settlement is set when the placement ended the round.
	Settlement *Settlement
}

// Match owns the players and casinos of one game and drives the turn and
// round lifecycle. A Match is not safe for concurrent use.
type Match struct {
	id     string
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger

	players []*Player
	casinos []*Casino

	round        int
	rounds       int
	dealerDice   int
	startPlayer  int
	activePlayer int
	phase        Phase

	last        *Settlement
	subscribers []EventSubscriber
}

// NewMatch creates a match for numPlayers players and stocks the casinos for
// round one. The RNG is required so that dice and shuffles are reproducible.
func NewMatch(rng *rand.Rand, numPlayers int, opts ...Option) (*Match, error) {
	if rng == nil {
		panic("rng is required for match creation")
	}
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d, want %d-%d", ErrPlayerCount, numPlayers, MinPlayers, MaxPlayers)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dealerDice != 0 && cfg.dealerDice != DealerDicePerRound {
		return nil, fmt.Errorf("%w: dealer dice must be 0 or %d, got %d", ErrInvalidConfig, DealerDicePerRound, cfg.dealerDice)
	}
	if cfg.rounds < 1 {
		return nil, fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalidConfig, cfg.rounds)
	}
	if len(cfg.names) > numPlayers {
		return nil, fmt.Errorf("%w: %d names for %d players", ErrInvalidConfig, len(cfg.names), numPlayers)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	if cfg.id == "" {
		cfg.id = matchid.NewGenerator(cfg.clock, rng).Generate()
	}

	m := &Match{
		id:          cfg.id,
		rng:         rng,
		clock:       cfg.clock,
		logger:      cfg.logger.With("match", cfg.id),
		round:       1,
		rounds:      cfg.rounds,
		dealerDice:  cfg.dealerDice,
		phase:       AwaitingRoll,
		subscribers: cfg.subscribers,
	}

	m.players = make([]*Player, numPlayers)
	for i := range m.players {
		name := ""
		if i < len(cfg.names) {
			name = cfg.names[i]
		}
		m.players[i] = newPlayer(i, name)
	}
	m.casinos = make([]*Casino, NumCasinos)
	for i := range m.casinos {
		m.casinos[i] = newCasino(i + 1)
	}

	m.resetRound(true)

	m.logger.Debug("Match created",
		"players", numPlayers,
		"dealer_dice", m.dealerDice,
		"rounds", m.rounds)

	return m, nil
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Roll rolls the active player's unplaced dice. It also acknowledges a
// completed round if the caller skipped AdvanceIfRoundComplete.
func (m *Match) Roll() (RollOutcome, error) {
	switch m.phase {
	case GameComplete:
		return RollOutcome{}, ErrGameComplete
	case AwaitingPlacement:
		return RollOutcome{}, ErrAlreadyRolled
	}

	p := m.players[m.activePlayer]
	if !p.HasDice() {
		return RollOutcome{}, ErrNoDiceLeft
	}

	m.phase = AwaitingPlacement
	p.roll(m.rng)

	m.logger.Debug("Rolled",
		"round", m.round,
		"player", p.Name,
		"regular", p.CurrentRoll,
		"dealer", p.CurrentDealerRoll)

	event := m.newRollEvent(p)
	m.publish(event)

	return RollOutcome{
		Player:  p.ID,
		Regular: slices.Clone(p.CurrentRoll),
		Dealer:  slices.Clone(p.CurrentDealerRoll),
	}, nil
}

// Place commits every rolled die showing casino to that casino and passes
// the turn. If that exhausts every player's dice the round is settled and the
// result carries the settlement.
func (m *Match) Place(casino int) (PlacementResult, error) {
	if m.phase == GameComplete {
		return PlacementResult{}, ErrGameComplete
	}
	if m.phase != AwaitingPlacement {
		return PlacementResult{}, ErrNotRolled
	}
	if casino < 1 || casino > NumCasinos {
		return PlacementResult{}, fmt.Errorf("%w: %d", ErrInvalidCasino, casino)
	}

	p := m.players[m.activePlayer]
	if regular, dealer := p.Shows(casino); regular == 0 && dealer == 0 {
		return PlacementResult{}, fmt.Errorf("%w: %d", ErrNoMatchingDice, casino)
	}

	regular, dealer := p.take(casino)
	c := m.casinos[casino-1]
	c.commit(p.ID, regular)
	c.commitDealer(dealer)

	m.logger.Debug("Placed",
		"round", m.round,
		"player", p.Name,
		"casino", casino,
		"regular", regular,
		"dealer", dealer)

	m.publish(PlacementEvent{
		MatchID: m.id,
		Round:   m.round,
		Player:  p.ID,
		Casino:  casino,
		Regular: regular,
		Dealer:  dealer,
		at:      m.clock.Now(),
	})

	return PlacementResult{
		Player:     p.ID,
		Casino:     casino,
		Regular:    regular,
		Dealer:     dealer,
		Settlement: m.advanceTurn(),
	}, nil
}

// AdvanceIfRoundComplete acknowledges a settled round so the next round's
// first roll can be taken, and returns that round's settlement. It returns
// false if no round is waiting to be acknowledged.
func (m *Match) AdvanceIfRoundComplete() (*Settlement, bool) {
	if m.phase != RoundComplete {
		return nil, false
	}
	m.phase = AwaitingRoll
	return m.last, true
}

// ValidPlacements returns the casinos the pending roll can be placed on, in
// ascending order. It is empty unless a roll is pending.
func (m *Match) ValidPlacements() []int {
	if m.phase != AwaitingPlacement {
		return nil
	}
	p := m.players[m.activePlayer]
	var out []int
	for face := 1; face <= NumCasinos; face++ {
		if regular, dealer := p.Shows(face); regular > 0 || dealer > 0 {
			out = append(out, face)
		}
	}
	return out
}

// advanceTurn hands the turn to the next player holding dice, settling the
// round if nobody does.
func (m *Match) advanceTurn() *Settlement {
	m.phase = AwaitingRoll

	n := len(m.players)
	for step := 1; step <= n; step++ {
		next := (m.activePlayer + step) % n
		if m.players[next].HasDice() {
			m.activePlayer = next
			return nil
		}
	}
	return m.settleRound()
}

func (m *Match) settleRound() *Settlement {
	s := Settlement{
		Round:  m.round,
		Awards: make(map[int][]Award, len(m.players)),
	}
	for _, p := range m.players {
		s.Awards[p.ID] = []Award{}
	}

	for _, c := range m.casinos {
		result := CasinoResult{
			Casino:  c.Number,
			Stocked: c.stocked,
			Blocked: c.Blocked(),
			Awards:  c.payout(m.players),
		}
		result.Leftover = c.Stack.Total()
		for _, a := range result.Awards {
			s.Awards[a.Player] = append(s.Awards[a.Player], a)
		}
		s.Casinos = append(s.Casinos, result)
	}

	m.round++
	m.startPlayer = (m.startPlayer + 1) % len(m.players)
	m.activePlayer = m.startPlayer
	m.last = &s

	complete := m.round > m.rounds
	m.resetRound(!complete)
	if complete {
		m.phase = GameComplete
	} else {
		m.phase = RoundComplete
	}

	m.logger.Info("Round settled",
		"round", s.Round,
		"distributed", s.Distributed(),
		"leftover", s.Leftover())

	m.publish(RoundSettledEvent{MatchID: m.id, Settlement: s, at: m.clock.Now()})

	if complete {
		winner := m.winner()
		m.logger.Info("Game complete", "winner", winner.Name, "money", winner.Money, "cards", winner.CardCount)
		m.publish(GameCompleteEvent{
			MatchID:   m.id,
			Winner:    winner.state(),
			Standings: m.Standings(),
			at:        m.clock.Now(),
		})
	}

	return &s
}

// resetRound hands every player a fresh set of dice and clears the casinos.
// When restock is set a new money pool is shuffled and dealt to the casinos.
func (m *Match) resetRound(restock bool) {
	for _, p := range m.players {
		p.resetDice(RegularDicePerRound, m.dealerDice)
	}

	var pool *money.Pool
	if restock {
		pool = money.NewShuffledPool(m.rng)
	}
	for _, c := range m.casinos {
		c.restock(pool)
	}
}

// IsRoundComplete reports whether a round has just been settled and not yet
// acknowledged, or the game is over.
func (m *Match) IsRoundComplete() bool {
	return m.phase == RoundComplete || m.phase == GameComplete
}

// IsGameComplete reports whether the final round has been settled.
func (m *Match) IsGameComplete() bool {
	return m.phase == GameComplete
}

// LastSettlement returns the most recent round's settlement, or nil before
// the first round ends.
func (m *Match) LastSettlement() *Settlement {
	return m.last
}

// Winner returns the player with the most money, breaking ties on cards won
// and then on seat order.
func (m *Match) Winner() (PlayerState, error) {
	if m.phase != GameComplete {
		return PlayerState{}, ErrGameNotComplete
	}
	return m.winner().state(), nil
}

func (m *Match) winner() *Player {
	best := m.players[0]
	for _, p := range m.players[1:] {
		if compareStanding(p, best) > 0 {
			best = p
		}
	}
	return best
}

// Standings returns every player ordered best first by money then cards won.
// Equal players keep seat order.
func (m *Match) Standings() []PlayerState {
	ordered := slices.Clone(m.players)
	slices.SortStableFunc(ordered, func(a, b *Player) int {
		return compareStanding(b, a)
	})
	out := make([]PlayerState, len(ordered))
	for i, p := range ordered {
		out[i] = p.state()
	}
	return out
}

func compareStanding(a, b *Player) int {
	if c := cmp.Compare(a.Money, b.Money); c != 0 {
		return c
	}
	return cmp.Compare(a.CardCount, b.CardCount)
}

// State returns a deep copy of the match.
func (m *Match) State() State {
	s := State{
		ID:           m.id,
		Round:        m.round,
		Rounds:       m.rounds,
		Phase:        m.phase,
		StartPlayer:  m.startPlayer,
		ActivePlayer: m.activePlayer,
		Players:      make([]PlayerState, len(m.players)),
		Casinos:      make([]CasinoState, len(m.casinos)),
	}
	for i, p := range m.players {
		s.Players[i] = p.state()
	}
	for i, c := range m.casinos {
		s.Casinos[i] = c.state()
	}
	return s
}
