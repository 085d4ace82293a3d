// Package tui provides the Bubble Tea frontend for Fight Kokaton.
// It handles the terminal UI loop, input mapping and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// gameOverMsg ends the program once the game-over hold has elapsed.
type gameOverMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd waits d before ending the program.
func holdCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return gameOverMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return gameOverMsg{}
	})
}
