package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/vegas/internal/game"
)

// Policy picks which casino to place a pending roll on. valid is never empty.
type Policy interface {
	Name() string
	Choose(rng *rand.Rand, state game.State, valid []int) int
}

// RandomPolicy picks uniformly among the legal casinos.
type RandomPolicy struct{}

func (RandomPolicy) Name() string { return "random" }

func (RandomPolicy) Choose(rng *rand.Rand, _ game.State, valid []int) int {
	return valid[rng.IntN(len(valid))]
}

// FirstPolicy always picks the lowest legal casino.
type FirstPolicy struct{}

func (FirstPolicy) Name() string { return "first" }

func (FirstPolicy) Choose(_ *rand.Rand, _ game.State, valid []int) int {
	return valid[0]
}

// PolicyByName resolves a policy from its CLI name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "random", "":
		return RandomPolicy{}, nil
	case "first":
		return FirstPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want random or first)", name)
	}
}
