// Package format renders engine values for people: money amounts, dice and
// settlement summaries.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lox/vegas/internal/game"
)

// Formatter renders values using a locale's number grouping.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Default formats with English grouping.
var Default = New(language.English)

// Money renders an amount as dollars with grouping, e.g. $90,000.
func (f *Formatter) Money(amount int) string {
	return f.printer.Sprintf("$%d", amount)
}

// Dice renders faces as a bracketed list, e.g. [1 3 3 6].
func Dice(faces []int) string {
	parts := make([]string, len(faces))
	for i, face := range faces {
		parts[i] = strconv.Itoa(face)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Settlement renders one line per player listing the cards they won, e.g.
// "Ann: casino 2 $60,000, casino 5 $30,000 (total $90,000)". Zero-amount
// awards are left out; players who won nothing get "nothing".
func (f *Formatter) Settlement(s game.Settlement, players []game.PlayerState) []string {
	lines := make([]string, 0, len(players))
	for _, p := range players {
		paid := s.Paid(p.ID)
		if len(paid) == 0 {
			lines = append(lines, fmt.Sprintf("%s: nothing", p.Name))
			continue
		}
		parts := make([]string, len(paid))
		for i, a := range paid {
			parts[i] = fmt.Sprintf("casino %d %s", a.Casino, f.Money(a.Amount))
		}
		lines = append(lines, fmt.Sprintf("%s: %s (total %s)", p.Name, strings.Join(parts, ", "), f.Money(s.Winnings(p.ID))))
	}
	return lines
}

// Standings renders the final ranking, best first.
func (f *Formatter) Standings(standings []game.PlayerState) []string {
	lines := make([]string, len(standings))
	for i, p := range standings {
		lines[i] = fmt.Sprintf("%d. %s %s (%d cards)", i+1, p.Name, f.Money(p.Money), p.CardCount)
	}
	return lines
}
