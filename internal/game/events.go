package game

import (
	"slices"
	"time"
)

// EventType identifies a match event.
type EventType string

const (
	EventTypeRoll         EventType = "roll"
	EventTypePlacement    EventType = "placement"
	EventTypeRoundSettled EventType = "round_settled"
	EventTypeGameComplete EventType = "game_complete"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything a match publishes to its subscribers.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RollEvent is published after a player rolls.
type RollEvent struct {
	MatchID string
	Round   int
	Player  int
	Regular []int
	Dealer  []int
	at      time.Time
}

func (e RollEvent) EventType() EventType { return EventTypeRoll }
func (e RollEvent) Timestamp() time.Time { return e.at }

// PlacementEvent is published after dice are committed to a casino.
type PlacementEvent struct {
	MatchID string
	Round   int
	Player  int
	Casino  int
	Regular int
	Dealer  int
	at      time.Time
}

func (e PlacementEvent) EventType() EventType { return EventTypePlacement }
func (e PlacementEvent) Timestamp() time.Time { return e.at }

// RoundSettledEvent is published once every casino has paid out.
type RoundSettledEvent struct {
	MatchID    string
	Settlement Settlement
	at         time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.at }

// GameCompleteEvent is published after the final round settles.
type GameCompleteEvent struct {
	MatchID   string
	Winner    PlayerState
	Standings []PlayerState
	at        time.Time
}

func (e GameCompleteEvent) EventType() EventType { return EventTypeGameComplete }
func (e GameCompleteEvent) Timestamp() time.Time { return e.at }

// EventSubscriber receives match events synchronously, after the state change
// they describe.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber.
type EventSubscriberFunc func(GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

func (m *Match) publish(event GameEvent) {
	for _, sub := range m.subscribers {
		sub.OnEvent(event)
	}
}

func (m *Match) newRollEvent(p *Player) RollEvent {
	return RollEvent{
		MatchID: m.id,
		Round:   m.round,
		Player:  p.ID,
		Regular: slices.Clone(p.CurrentRoll),
		Dealer:  slices.Clone(p.CurrentDealerRoll),
		at:      m.clock.Now(),
	}
}
