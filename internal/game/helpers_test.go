package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/vegas/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestMatch(t *testing.T, players int, opts ...Option) *Match {
	t.Helper()
	opts = append([]Option{
		WithClock(quartz.NewMock(t)),
		WithLogger(quietLogger()),
		WithID("test"),
	}, opts...)
	m, err := NewMatch(randutil.New(42), players, opts...)
	require.NoError(t, err)
	return m
}

// forceRoll puts the active player into AwaitingPlacement with a chosen roll.
func forceRoll(t *testing.T, m *Match, regular, dealer []int) {
	t.Helper()
	p := m.players[m.activePlayer]
	require.Len(t, regular, p.RegularDice, "regular roll must cover every unplaced die")
	require.Len(t, dealer, p.DealerDice, "dealer roll must cover every unplaced dealer die")
	p.CurrentRoll = append([]int(nil), regular...)
	p.CurrentDealerRoll = append([]int(nil), dealer...)
	m.phase = AwaitingPlacement
}

// playTurn rolls for the active player and places the lowest legal face.
func playTurn(t *testing.T, m *Match) PlacementResult {
	t.Helper()
	if m.phase == RoundComplete {
		_, ok := m.AdvanceIfRoundComplete()
		require.True(t, ok)
	}
	_, err := m.Roll()
	require.NoError(t, err)
	valid := m.ValidPlacements()
	require.NotEmpty(t, valid)
	res, err := m.Place(valid[0])
	require.NoError(t, err)
	return res
}

// requireDiceAccounting checks that every die is either unplaced or
// committed to exactly one casino.
func requireDiceAccounting(t *testing.T, m *Match) {
	t.Helper()
	dealerOnCasinos := 0
	for _, c := range m.casinos {
		dealerOnCasinos += c.DealerDice
	}
	dealerCommitted := 0
	for _, p := range m.players {
		onCasinos := 0
		for _, c := range m.casinos {
			onCasinos += c.DiceFor(p.ID)
		}
		require.Equal(t, p.committedRegular, onCasinos, "player %d casino tally", p.ID)
		require.Equal(t, RegularDicePerRound, p.RegularDice+p.committedRegular, "player %d regular dice", p.ID)
		require.Equal(t, m.dealerDice, p.DealerDice+p.committedDealer, "player %d dealer dice", p.ID)
		require.LessOrEqual(t, len(p.CurrentRoll), p.RegularDice)
		require.LessOrEqual(t, len(p.CurrentDealerRoll), p.DealerDice)
		dealerCommitted += p.committedDealer
	}
	require.Equal(t, dealerCommitted, dealerOnCasinos)
}
