package game

import (
	"errors"
	"fmt"
)

// Error classes. Every rejected operation wraps exactly one of these and
// leaves the match untouched.
var (
	// ErrInvalidOperationOrder is returned when an operation is called in the
	// wrong phase, e.g. placing before rolling.
	ErrInvalidOperationOrder = errors.New("invalid operation order")

	// ErrIllegalSelection is returned when a placement names a casino the
	// pending roll cannot be placed on.
	ErrIllegalSelection = errors.New("illegal selection")

	// ErrPlayerCount is returned by NewMatch for fewer than MinPlayers or more
	// than MaxPlayers players.
	ErrPlayerCount = errors.New("player count out of range")

	// ErrGameComplete is returned by Roll and Place once the final round has
	// been settled.
	ErrGameComplete = errors.New("game is complete")

	// ErrGameNotComplete is returned by Winner while rounds remain.
	ErrGameNotComplete = errors.New("game is not complete")

	// ErrInvalidConfig is returned by NewMatch for unsupported options.
	ErrInvalidConfig = errors.New("invalid match configuration")
)

var (
	ErrAlreadyRolled = fmt.Errorf("%w: dice already rolled this turn", ErrInvalidOperationOrder)
	ErrNotRolled     = fmt.Errorf("%w: dice must be rolled before placing", ErrInvalidOperationOrder)
	ErrNoDiceLeft    = fmt.Errorf("%w: active player has no dice left", ErrInvalidOperationOrder)

	ErrNoMatchingDice = fmt.Errorf("%w: no rolled die shows that value", ErrIllegalSelection)
	ErrInvalidCasino  = fmt.Errorf("%w: casino number out of range", ErrIllegalSelection)
)
