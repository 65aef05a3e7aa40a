// Package tui runs the game in the terminal with Bubble Tea, locally or over
// SSH. It owns the tick loop, key mapping, score persistence and the
// scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twenty48/internal/core"
)

// TickMsg advances the running game by one step.
type TickMsg time.Time

// tickInterval is the period between steps. Rates below one fall back to
// the default, matching what the game assumes for its clock.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next step. One command is in flight at a time, so
// a Model drives exactly one game.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
