// Package game implements the rules engine for the Vegas dice game.
//
// The main type is Match, which owns the players and the six casinos and
// drives the roll/place cycle, round settlement and winner selection.
//
// # Basic Usage
//
//	m, err := game.NewMatch(randutil.New(42), 3)
//	if err != nil {
//	    return err
//	}
//	for !m.IsGameComplete() {
//	    roll, _ := m.Roll()
//	    res, _ := m.Place(roll.Regular[0])
//	    if res.Settlement != nil {
//	        // show the round's awards
//	    }
//	}
//	winner, _ := m.Winner()
//
// # Turn Cycle
//
// The active player rolls all of their unplaced dice, then picks one face
// value. Every regular and dealer die showing that value goes to the casino
// with the same number and the turn passes to the next player who still has
// dice. When nobody has dice left, every casino pays out and the next round
// begins with the start player rotated by one seat.
//
// # Payout
//
// A casino whose dealer dice match or exceed the highest player commitment
// pays nobody. Otherwise players whose commitment exceeds the dealer dice are
// ranked by count; each distinct count is paid one card from the front of the
// stack. Players tied on a count collapse to the first of them to have
// committed at that casino.
//
// # Determinism
//
// All randomness comes from the *rand.Rand passed to NewMatch. Events carry
// timestamps from a quartz.Clock, which tests replace with quartz.NewMock.
package game
