// Package tui provides the Bubble Tea integration for the glider game.
// It handles the terminal UI loop, input mapping, and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyglider/internal/session"
)

// TimerMsg delivers a session timer ticket back to the model.
type TimerMsg struct {
	Ticket session.Ticket
}

// thrustReleaseMsg ends keyboard thrust unless a newer press superseded it.
type thrustReleaseMsg struct {
	gen int
}

// cmdDriver turns session timer requests into Bubble Tea tick commands.
// Requests made during one Update are collected and returned together.
type cmdDriver struct {
	pending []tea.Cmd
}

// Deliver implements session.Driver.
func (d *cmdDriver) Deliver(t session.Ticket, after time.Duration) {
	d.pending = append(d.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return TimerMsg{Ticket: t}
	}))
}

// Flush returns the collected commands as one batch and clears them.
func (d *cmdDriver) Flush() tea.Cmd {
	if len(d.pending) == 0 {
		return nil
	}
	cmds := d.pending
	d.pending = nil
	return tea.Batch(cmds...)
}

// releaseCmd schedules the end of a keyboard thrust press.
func releaseCmd(gen int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return thrustReleaseMsg{gen: gen}
	})
}
