// Package tui provides the Bubble Tea integration for t2048.
// It handles the terminal UI loop, input mapping, and replay pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaybackMsg is sent to advance a replay by one recorded move.
type PlaybackMsg time.Time

// playbackCmd returns a Bubble Tea command that sends the next playback
// message after the configured delay.
func playbackCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return PlaybackMsg(t)
	})
}
