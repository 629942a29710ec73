package game

import (
	"cmp"
	"slices"

	"github.com/lox/vegas/internal/money"
)

// NumCasinos is the number of casinos on the table, numbered 1..NumCasinos.
const NumCasinos = 6

// Commitment is the number of regular dice one player has placed on a casino.
type Commitment struct {
	Player int
	Dice   int
}

// Award is one money card paid by a casino at settlement. Amount is zero when
// the payee ranked but the casino's stack had run out.
type Award struct {
	Player int
	Casino int
	Amount int
}

// Casino tallies the dice placed on one location for the current round and
// holds its money stack.
type Casino struct {
	Number int

	// tally is kept in first-commit order; payout tie-breaks depend on it.
	tally      []Commitment
	DealerDice int
	Stack      *money.Stack

	stocked int
}

func newCasino(number int) *Casino {
	return &Casino{Number: number, Stack: &money.Stack{}}
}

func (c *Casino) commit(player, dice int) {
	if dice <= 0 {
		return
	}
	for i := range c.tally {
		if c.tally[i].Player == player {
			c.tally[i].Dice += dice
			return
		}
	}
	c.tally = append(c.tally, Commitment{Player: player, Dice: dice})
}

func (c *Casino) commitDealer(dice int) {
	c.DealerDice += dice
}

// Tally returns the committed dice in first-commit order.
func (c *Casino) Tally() []Commitment {
	return slices.Clone(c.tally)
}

// DiceFor returns how many regular dice player has on this casino.
func (c *Casino) DiceFor(player int) int {
	for _, cm := range c.tally {
		if cm.Player == player {
			return cm.Dice
		}
	}
	return 0
}

// Blocked reports whether the dealer dice match or beat every player's
// commitment, or nobody committed at all.
func (c *Casino) Blocked() bool {
	highest := 0
	for _, cm := range c.tally {
		highest = max(highest, cm.Dice)
	}
	return highest == 0 || c.DealerDice >= highest
}

// payees returns one player per distinct committed count above the dealer
// count, highest count first. Among players tied on a count only the first
// in tally order is kept.
func (c *Casino) payees() []int {
	if c.Blocked() {
		return nil
	}

	ranked := slices.Clone(c.tally)
	slices.SortStableFunc(ranked, func(a, b Commitment) int {
		return cmp.Compare(b.Dice, a.Dice)
	})

	var out []int
	seen := make(map[int]bool)
	for _, cm := range ranked {
		if cm.Dice <= c.DealerDice || seen[cm.Dice] {
			continue
		}
		seen[cm.Dice] = true
		out = append(out, cm.Player)
	}
	return out
}

// payout pays the stack front-first to the ranked payees and credits the
// players. It returns one Award per payee, in rank order.
func (c *Casino) payout(players []*Player) []Award {
	var awards []Award
	for _, id := range c.payees() {
		amount, ok := c.Stack.Pop()
		if ok {
			players[id].award(amount)
		}
		awards = append(awards, Award{Player: id, Casino: c.Number, Amount: amount})
	}
	return awards
}

// restock clears the round's dice and draws a new stack from pool. A nil pool
// leaves the stack empty.
func (c *Casino) restock(pool *money.Pool) {
	c.tally = nil
	c.DealerDice = 0
	c.Stack.Reset()
	if pool != nil {
		c.Stack.Fill(pool)
	}
	c.stocked = c.Stack.Total()
}

func (c *Casino) state() CasinoState {
	return CasinoState{
		Number:     c.Number,
		Tally:      c.Tally(),
		DealerDice: c.DealerDice,
		Stack:      c.Stack.Cards(),
		Blocked:    c.Blocked(),
	}
}
