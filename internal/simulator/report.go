package simulator

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/vegas/internal/format"
	"github.com/lox/vegas/internal/statistics"
)

// Report aggregates a simulation run.
type Report struct {
	Matches     int                  `json:"matches"`
	Players     int                  `json:"players"`
	DealerDice  int                  `json:"dealer_dice"`
	Rounds      int                  `json:"rounds"`
	Seed        int64                `json:"seed"`
	Policy      string               `json:"policy"`
	Wins        []int                `json:"wins"`
	WinRate     []float64            `json:"win_rate"`
	AvgMoney    []float64            `json:"avg_money"`
	MoneyStats  []statistics.Summary `json:"money_stats"`
	AvgCards    []float64            `json:"avg_cards"`
	AvgTurns    float64              `json:"avg_turns"`
	BlockedRate float64              `json:"blocked_rate"`
	AvgLeftover float64              `json:"avg_leftover"`
	Duration    string               `json:"duration"`
}

func newReport(cfg Config, results []MatchResult, elapsed time.Duration) *Report {
	r := &Report{
		Matches:    len(results),
		Players:    cfg.Players,
		DealerDice: cfg.DealerDice,
		Rounds:     cfg.Rounds,
		Seed:       cfg.Seed,
		Policy:     cfg.Policy.Name(),
		Wins:       make([]int, cfg.Players),
		WinRate:    make([]float64, cfg.Players),
		AvgMoney:   make([]float64, cfg.Players),
		AvgCards:   make([]float64, cfg.Players),
		Duration:   elapsed.Round(time.Millisecond).String(),
	}
	if len(results) == 0 {
		return r
	}

	money := make([]statistics.Sample, cfg.Players)
	turns, casinos, blocked, leftover := 0, 0, 0, 0
	for _, res := range results {
		r.Wins[res.Winner]++
		for seat := range cfg.Players {
			money[seat].Add(float64(res.Money[seat]))
			r.AvgCards[seat] += float64(res.Cards[seat])
		}
		turns += res.Turns
		casinos += res.Casinos
		blocked += res.BlockedCasinos
		leftover += res.Leftover
	}

	n := float64(len(results))
	for seat := range cfg.Players {
		r.WinRate[seat] = float64(r.Wins[seat]) / n
		r.AvgMoney[seat] = money[seat].Mean()
		r.MoneyStats = append(r.MoneyStats, money[seat].Summary())
		r.AvgCards[seat] /= n
	}
	r.AvgTurns = float64(turns) / n
	r.AvgLeftover = float64(leftover) / n
	if casinos > 0 {
		r.BlockedRate = float64(blocked) / float64(casinos)
	}
	return r
}

// Lines renders the report for a terminal.
func (r *Report) Lines(f *format.Formatter) []string {
	lines := []string{
		fmt.Sprintf("Matches: %d  Players: %d  Dealer dice: %d  Rounds: %d  Policy: %s  Seed: %d",
			r.Matches, r.Players, r.DealerDice, r.Rounds, r.Policy, r.Seed),
		fmt.Sprintf("Avg turns: %.1f  Blocked casinos: %.1f%%  Avg unpaid: %s  Took: %s",
			r.AvgTurns, r.BlockedRate*100, f.Money(int(r.AvgLeftover)), r.Duration),
	}
	for seat := range r.Players {
		line := fmt.Sprintf("Seat %d: wins %d (%.1f%%)  avg %s  avg cards %.2f",
			seat+1, r.Wins[seat], r.WinRate[seat]*100, f.Money(int(r.AvgMoney[seat])), r.AvgCards[seat])
		if seat < len(r.MoneyStats) {
			ms := r.MoneyStats[seat]
			line += fmt.Sprintf("  95%% CI [%s, %s]  median %s",
				f.Money(int(ms.CILow)), f.Money(int(ms.CIHigh)), f.Money(int(ms.Median)))
		}
		lines = append(lines, line)
	}
	return lines
}

// String renders the report as a block of text.
func (r *Report) String() string {
	return strings.Join(r.Lines(format.Default), "\n")
}
