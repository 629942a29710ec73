// Package money models the Vegas money cards: the pool shuffled at the start
// of every round and the stack each casino draws from it.
package money

import (
	rand "math/rand/v2"
	"slices"

	"github.com/lox/vegas/internal/randutil"
)

// Threshold is the minimum value a casino stack must reach before it stops
// drawing cards.
const Threshold = 50000

// Denomination is a card value together with how many copies the pool holds.
type Denomination struct {
	Value  int
	Copies int
}

// Denominations lists the 54 money cards of a round.
var Denominations = []Denomination{
	{Value: 10000, Copies: 6},
	{Value: 20000, Copies: 8},
	{Value: 30000, Copies: 8},
	{Value: 40000, Copies: 6},
	{Value: 50000, Copies: 6},
	{Value: 60000, Copies: 5},
	{Value: 70000, Copies: 5},
	{Value: 80000, Copies: 5},
	{Value: 90000, Copies: 5},
}

// Pool is the shuffled set of cards casinos draw from during round setup.
// Cards are drawn from the back.
type Pool struct {
	cards []int
}

// NewPool builds the full card set in denomination order without shuffling.
func NewPool() *Pool {
	var cards []int
	for _, d := range Denominations {
		for range d.Copies {
			cards = append(cards, d.Value)
		}
	}
	return &Pool{cards: cards}
}

// NewShuffledPool builds the full card set and shuffles it with rng.
func NewShuffledPool(rng *rand.Rand) *Pool {
	p := NewPool()
	randutil.Shuffle(rng, p.cards)
	return p
}

// PoolOf returns a pool holding exactly cards; the last element is drawn
// first. Useful for tests that need a fixed order.
func PoolOf(cards ...int) *Pool {
	return &Pool{cards: slices.Clone(cards)}
}

// Draw removes and returns the next card. ok is false when the pool is empty.
func (p *Pool) Draw() (value int, ok bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	last := len(p.cards) - 1
	value = p.cards[last]
	p.cards = p.cards[:last]
	return value, true
}

// Len returns the number of cards left.
func (p *Pool) Len() int {
	return len(p.cards)
}

// Stack is a casino's money cards for one round. The front card is paid
// first.
type Stack struct {
	cards []int
	paid  int
}

// StackOf returns a stack with the given cards in payout order.
func StackOf(cards ...int) *Stack {
	return &Stack{cards: slices.Clone(cards)}
}

// Fill draws from pool until the stack's value reaches Threshold or the pool
// runs dry, and returns the number of cards drawn.
func (s *Stack) Fill(pool *Pool) int {
	drawn := 0
	for s.Total() < Threshold {
		card, ok := pool.Draw()
		if !ok {
			break
		}
		s.cards = append(s.cards, card)
		drawn++
	}
	return drawn
}

// Pop removes and returns the front card. ok is false when the stack is
// exhausted.
func (s *Stack) Pop() (value int, ok bool) {
	if len(s.cards) == 0 {
		return 0, false
	}
	value = s.cards[0]
	s.cards = s.cards[1:]
	s.paid += value
	return value, true
}

// Reset discards all cards and the paid total.
func (s *Stack) Reset() {
	s.cards = nil
	s.paid = 0
}

// Cards returns a copy of the remaining cards in payout order.
func (s *Stack) Cards() []int {
	if len(s.cards) == 0 {
		return nil
	}
	return slices.Clone(s.cards)
}

// Len returns the number of remaining cards.
func (s *Stack) Len() int {
	return len(s.cards)
}

// Total returns the value of the remaining cards.
func (s *Stack) Total() int {
	total := 0
	for _, c := range s.cards {
		total += c
	}
	return total
}

// Paid returns the value popped since the last Reset.
func (s *Stack) Paid() int {
	return s.paid
}
