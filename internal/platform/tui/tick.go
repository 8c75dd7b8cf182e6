// Package tui runs the game in a terminal through Bubble Tea, locally or
// over SSH. It maps keys and mouse to game commands, drives the tick loop
// and draws the stage into a colored cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clock converts wall-clock tick times into a monotonic offset from the
// model's start, the timestamp the game loop expects.
type clock struct {
	start time.Time
}

func newClock() clock {
	return clock{start: time.Now()}
}

// since returns the time elapsed between the clock's start and t.
// Times before the start map to zero.
func (c clock) since(t time.Time) time.Duration {
	return max(t.Sub(c.start), 0)
}
