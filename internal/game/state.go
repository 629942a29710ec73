package game

// Phase is where the match is in its roll/place cycle.
type Phase int

const (
	AwaitingRoll Phase = iota
	AwaitingPlacement
	// RoundComplete holds between a settling placement and the next roll (or
	// AdvanceIfRoundComplete), so front ends can show the results.
	RoundComplete
	GameComplete
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case AwaitingRoll:
		return "Awaiting Roll"
	case AwaitingPlacement:
		return "Awaiting Placement"
	case RoundComplete:
		return "Round Complete"
	case GameComplete:
		return "Game Complete"
	default:
		return "Unknown"
	}
}

// PlayerState is a read-only copy of a Player.
type PlayerState struct {
	ID                int
	Name              string
	RegularDice       int
	DealerDice        int
	CurrentRoll       []int
	CurrentDealerRoll []int
	Money             int
	CardCount         int
	CommittedRegular  int
	CommittedDealer   int
}

// CasinoState is a read-only copy of a Casino.
type CasinoState struct {
	Number     int
	Tally      []Commitment
	DealerDice int
	Stack      []int
	Blocked    bool
}

// State is a snapshot of the whole match. Mutating it has no effect on the
// match.
type State struct {
	ID           string
	Round        int
	Rounds       int
	Phase        Phase
	StartPlayer  int
	ActivePlayer int
	Players      []PlayerState
	Casinos      []CasinoState
}

// RollPending reports whether the active player has rolled and must place.
func (s State) RollPending() bool {
	return s.Phase == AwaitingPlacement
}

// Active returns the active player's state.
func (s State) Active() PlayerState {
	return s.Players[s.ActivePlayer]
}

// CasinoResult is one casino's share of a settlement.
type CasinoResult struct {
	Casino   int
	Stocked  int
	Blocked  bool
	Awards   []Award
	Leftover int
}

// Settlement records what every casino paid at the end of a round.
type Settlement struct {
	Round   int
	Casinos []CasinoResult
	// Awards maps player ID to that player's awards in casino order,
	// including zero-amount awards. Every player has an entry.
	Awards map[int][]Award
}

// Winnings returns the total paid to player this round.
func (s Settlement) Winnings(player int) int {
	total := 0
	for _, a := range s.Awards[player] {
		total += a.Amount
	}
	return total
}

// Paid returns player's awards with a positive amount.
func (s Settlement) Paid(player int) []Award {
	var out []Award
	for _, a := range s.Awards[player] {
		if a.Amount > 0 {
			out = append(out, a)
		}
	}
	return out
}

// Stocked returns the total value of all casino stacks at round start.
func (s Settlement) Stocked() int {
	total := 0
	for _, c := range s.Casinos {
		total += c.Stocked
	}
	return total
}

// Distributed returns the total value paid to players.
func (s Settlement) Distributed() int {
	total := 0
	for _, c := range s.Casinos {
		for _, a := range c.Awards {
			total += a.Amount
		}
	}
	return total
}

// Leftover returns the value left unpaid on the stacks.
func (s Settlement) Leftover() int {
	total := 0
	for _, c := range s.Casinos {
		total += c.Leftover
	}
	return total
}
