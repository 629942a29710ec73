package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/vegas/internal/randutil"
)

// Player holds one seat's dice and winnings. Dice counts include dice that
// have been rolled but not yet placed.
type Player struct {
	ID   int
	Name string

	RegularDice int
	DealerDice  int

	CurrentRoll       []int
	CurrentDealerRoll []int

	Money     int
	CardCount int

	// committed this round, for accounting checks
	committedRegular int
	committedDealer  int
}

func newPlayer(id int, name string) *Player {
	if name == "" {
		name = fmt.Sprintf("Player %d", id+1)
	}
	return &Player{ID: id, Name: name}
}

// HasDice returns true if the player still has any unplaced die.
func (p *Player) HasDice() bool {
	return p.RegularDice > 0 || p.DealerDice > 0
}

// Shows returns how many regular and dealer dice in the pending roll show face.
func (p *Player) Shows(face int) (regular, dealer int) {
	return countFace(p.CurrentRoll, face), countFace(p.CurrentDealerRoll, face)
}

func (p *Player) roll(rng *rand.Rand) {
	p.CurrentRoll = randutil.RollDice(rng, p.RegularDice)
	p.CurrentDealerRoll = randutil.RollDice(rng, p.DealerDice)
}

// take removes every die showing face from both rolls and returns how many of
// each kind were removed. The rest of the roll stays visible until the
// player's next roll replaces it.
func (p *Player) take(face int) (regular, dealer int) {
	regular, dealer = p.Shows(face)

	p.CurrentRoll = removeFace(p.CurrentRoll, face)
	p.CurrentDealerRoll = removeFace(p.CurrentDealerRoll, face)
	p.RegularDice -= regular
	p.DealerDice -= dealer
	p.committedRegular += regular
	p.committedDealer += dealer
	return regular, dealer
}

func (p *Player) resetDice(regular, dealer int) {
	p.RegularDice = regular
	p.DealerDice = dealer
	p.CurrentRoll = nil
	p.CurrentDealerRoll = nil
	p.committedRegular = 0
	p.committedDealer = 0
}

func (p *Player) award(amount int) {
	p.Money += amount
	p.CardCount++
}

func (p *Player) state() PlayerState {
	return PlayerState{
		ID:                p.ID,
		Name:              p.Name,
		RegularDice:       p.RegularDice,
		DealerDice:        p.DealerDice,
		CurrentRoll:       slices.Clone(p.CurrentRoll),
		CurrentDealerRoll: slices.Clone(p.CurrentDealerRoll),
		Money:             p.Money,
		CardCount:         p.CardCount,
		CommittedRegular:  p.committedRegular,
		CommittedDealer:   p.committedDealer,
	}
}

func removeFace(faces []int, face int) []int {
	out := faces[:0]
	for _, f := range faces {
		if f != face {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func countFace(faces []int, face int) int {
	n := 0
	for _, f := range faces {
		if f == face {
			n++
		}
	}
	return n
}
