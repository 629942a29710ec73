package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/lox/vegas/internal/game"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "$0"},
		{10000, "$10,000"},
		{90000, "$90,000"},
		{1250000, "$1,250,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Default.Money(tt.amount))
	}

	assert.Equal(t, "$90.000", New(language.German).Money(90000))
}

func TestDice(t *testing.T) {
	assert.Equal(t, "[1 3 3 6]", Dice([]int{1, 3, 3, 6}))
	assert.Equal(t, "[]", Dice(nil))
}

func TestSettlement(t *testing.T) {
	s := game.Settlement{
		Round: 1,
		Awards: map[int][]game.Award{
			0: {{Player: 0, Casino: 2, Amount: 60000}, {Player: 0, Casino: 5, Amount: 30000}},
			1: {{Player: 1, Casino: 5, Amount: 0}},
		},
	}
	players := []game.PlayerState{{ID: 0, Name: "Ann"}, {ID: 1, Name: "Bo"}}

	assert.Equal(t, []string{
		"Ann: casino 2 $60,000, casino 5 $30,000 (total $90,000)",
		"Bo: nothing",
	}, Default.Settlement(s, players))
}

func TestStandings(t *testing.T) {
	lines := Default.Standings([]game.PlayerState{
		{Name: "Bo", Money: 250000, CardCount: 5},
		{Name: "Ann", Money: 120000, CardCount: 3},
	})
	assert.Equal(t, []string{
		"1. Bo $250,000 (5 cards)",
		"2. Ann $120,000 (3 cards)",
	}, lines)
}
