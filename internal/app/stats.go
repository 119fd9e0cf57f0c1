package app

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"hanoi/internal/game"
	"hanoi/internal/state"
)

// FormatStats renders the run history as a plain bordered table.
func FormatStats(sums []state.DiskSummary) string {
	if len(sums) == 0 {
		return "No games recorded yet.\n"
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DISKS", "RUNS", "SOLVED", "PERFECT", "BEST", "MINIMUM", "LAST PLAYED")
	for _, s := range sums {
		best := "-"
		if s.BestMoves > 0 {
			best = strconv.FormatUint(s.BestMoves, 10)
		}
		last := "-"
		if !s.LastTS.IsZero() {
			last = humanize.Time(s.LastTS)
		}
		t.Row(
			strconv.Itoa(s.Disks),
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Solved),
			strconv.Itoa(s.Perfect),
			best,
			strconv.FormatUint(game.MinMoves(s.Disks), 10),
			last,
		)
	}
	return t.String() + "\n"
}
