// Package tui is a hot-seat terminal front end for a Vegas match. It only
// calls the match's public operations and renders its snapshots.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/vegas/internal/format"
	"github.com/lox/vegas/internal/game"
)

// Model is the Bubble Tea model driving one match.
type Model struct {
	match  *game.Match
	logger *log.Logger
	fmt    *format.Formatter

	logViewport viewport.Model
	gameLog     []string
	status      string
	lastErr     error

	width    int
	height   int
	quitting bool
}

// New returns a model without a match. Pass it to game.WithSubscriber so it
// receives events, then call Attach with the created match.
func New(logger *log.Logger, f *format.Formatter) *Model {
	if f == nil {
		f = format.Default
	}
	return &Model{
		logger:      logger.WithPrefix("tui"),
		fmt:         f,
		logViewport: viewport.New(10, 5),
	}
}

// Attach sets the match the model drives.
func (m *Model) Attach(match *game.Match) {
	m.match = match
	m.status = m.prompt()
}

// Log returns the event log lines.
func (m *Model) Log() []string {
	return m.gameLog
}

// Status returns the current status line.
func (m *Model) Status() string {
	return m.status
}

// Err returns the last rejected operation's error.
func (m *Model) Err() error {
	return m.lastErr
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "r", " ":
			m.roll()
		case "1", "2", "3", "4", "5", "6":
			m.place(int(key[0] - '0'))
		case "n", "enter":
			m.advance()
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) roll() {
	if _, err := m.match.Roll(); err != nil {
		m.reject("roll", err)
		return
	}
	m.lastErr = nil
	m.status = m.prompt()
}

func (m *Model) place(casino int) {
	res, err := m.match.Place(casino)
	if err != nil {
		m.reject("place", err)
		return
	}
	m.lastErr = nil
	if res.Settlement != nil {
		m.status = m.roundSummary(*res.Settlement)
		return
	}
	m.status = m.prompt()
}

func (m *Model) advance() {
	if _, ok := m.match.AdvanceIfRoundComplete(); ok {
		m.lastErr = nil
		m.status = m.prompt()
	}
}

func (m *Model) reject(op string, err error) {
	m.lastErr = err
	m.logger.Debug("Rejected", "op", op, "err", err)
	switch {
	case errors.Is(err, game.ErrGameComplete):
		m.status = "The game is over. Press q to quit."
	case errors.Is(err, game.ErrAlreadyRolled):
		m.status = "Already rolled: pick a casino (1-6)."
	case errors.Is(err, game.ErrNotRolled):
		m.status = "Roll first (r)."
	case errors.Is(err, game.ErrIllegalSelection):
		m.status = "No die shows that number. Pick one of your rolled values."
	default:
		m.status = err.Error()
	}
}

func (m *Model) prompt() string {
	s := m.match.State()
	switch s.Phase {
	case game.GameComplete:
		w, _ := m.match.Winner()
		return fmt.Sprintf("%s wins with %s! Press q to quit.", w.Name, m.fmt.Money(w.Money))
	case game.RoundComplete:
		return "Round over. Press n to start the next round."
	case game.AwaitingPlacement:
		return fmt.Sprintf("%s: place on one of %v.", s.Active().Name, m.match.ValidPlacements())
	default:
		return fmt.Sprintf("%s: press r to roll.", s.Active().Name)
	}
}

func (m *Model) roundSummary(s game.Settlement) string {
	if m.match.IsGameComplete() {
		return m.prompt()
	}
	return fmt.Sprintf("Round %d settled. Press n to continue.", s.Round)
}

// OnEvent implements game.EventSubscriber by appending to the event log.
func (m *Model) OnEvent(event game.GameEvent) {
	players := m.playerNames()
	name := func(id int) string {
		if id < len(players) {
			return players[id]
		}
		return fmt.Sprintf("Player %d", id+1)
	}

	switch e := event.(type) {
	case game.RollEvent:
		line := fmt.Sprintf("%s rolled %s", name(e.Player), format.Dice(e.Regular))
		if len(e.Dealer) > 0 {
			line += fmt.Sprintf(" dealer %s", format.Dice(e.Dealer))
		}
		m.addLog(line)
	case game.PlacementEvent:
		m.addLog(fmt.Sprintf("%s placed %d dice and %d dealer dice on casino %d", name(e.Player), e.Regular, e.Dealer, e.Casino))
	case game.RoundSettledEvent:
		m.addLog(fmt.Sprintf("*** ROUND %d RESULTS ***", e.Settlement.Round))
		for _, c := range e.Settlement.Casinos {
			if c.Blocked {
				m.addLog(fmt.Sprintf("Casino %d blocked by the dealer", c.Casino))
			}
		}
		if m.match != nil {
			for _, line := range m.fmt.Settlement(e.Settlement, m.match.State().Players) {
				m.addLog(line)
			}
		}
	case game.GameCompleteEvent:
		m.addLog("*** FINAL STANDINGS ***")
		for _, line := range m.fmt.Standings(e.Standings) {
			m.addLog(line)
		}
	}
}

func (m *Model) playerNames() []string {
	if m.match == nil {
		return nil
	}
	players := m.match.State().Players
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}

func (m *Model) addLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}
