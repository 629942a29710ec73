package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/vegas/internal/game"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.match == nil {
		return "No match"
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	s := m.match.State()

	header := HeaderStyle.Render(fmt.Sprintf("VEGAS  round %d/%d", min(s.Round, s.Rounds), s.Rounds))
	casinos := paneStyle.Render(m.renderCasinos(s))
	players := paneStyle.Render(m.renderPlayers(s))
	top := lipgloss.JoinHorizontal(lipgloss.Top, casinos, players)

	roll := paneStyle.Width(max(m.width-2, 1)).Render(m.renderRoll(s))

	used := lipgloss.Height(header) + lipgloss.Height(top) + lipgloss.Height(roll) + 2
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(m.height-used-2, 1)
	logPane := paneStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, top, roll, logPane, m.renderStatus())
}

func (m *Model) renderCasinos(s game.State) string {
	names := make(map[int]string, len(s.Players))
	for _, p := range s.Players {
		names[p.ID] = p.Name
	}

	var b strings.Builder
	for i, c := range s.Casinos {
		if i > 0 {
			b.WriteString("\n")
		}
		stack := make([]string, len(c.Stack))
		for j, card := range c.Stack {
			stack[j] = m.fmt.Money(card)
		}
		b.WriteString(fmt.Sprintf("Casino %d  %s\n", c.Number, MoneyStyle.Render(strings.Join(stack, " "))))

		var tally []string
		for _, cm := range c.Tally {
			tally = append(tally, fmt.Sprintf("%s:%d", names[cm.Player], cm.Dice))
		}
		if c.DealerDice > 0 {
			tally = append(tally, BlockedStyle.Render(fmt.Sprintf("dealer:%d", c.DealerDice)))
		}
		if len(tally) == 0 {
			b.WriteString(InfoStyle.Render("  no dice"))
		} else {
			b.WriteString("  " + strings.Join(tally, "  "))
		}
	}
	return b.String()
}

func (m *Model) renderPlayers(s game.State) string {
	var b strings.Builder
	for i, p := range s.Players {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%s  %s (%d cards)\n  dice %d  dealer %d", p.Name, m.fmt.Money(p.Money), p.CardCount, p.RegularDice, p.DealerDice)
		if p.ID == s.ActivePlayer && s.Phase != game.GameComplete {
			b.WriteString(ActivePlayerStyle.Render("> " + line))
		} else {
			b.WriteString(PlayerInfoStyle.Render("  " + line))
		}
	}
	return b.String()
}

func (m *Model) renderRoll(s game.State) string {
	if !s.RollPending() {
		return InfoStyle.Render("No roll pending")
	}
	p := s.Active()
	var dice []string
	for _, face := range p.CurrentRoll {
		dice = append(dice, DieStyle.Render(fmt.Sprint(face)))
	}
	for _, face := range p.CurrentDealerRoll {
		dice = append(dice, DealerDieStyle.Render(fmt.Sprint(face)))
	}
	return p.Name + " rolled  " + strings.Join(dice, " ")
}

func (m *Model) renderStatus() string {
	if m.lastErr != nil {
		return ErrorStyle.Render(m.status)
	}
	return m.status
}
