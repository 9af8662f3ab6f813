// Package tui provides the Bubble Tea integration for colorwalls. It
// owns the render loop, key mapping and terminal output; all simulation
// state lives in the game package and is driven through the fixed-step
// clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg requests one render frame. The wrapped time is the wall-clock
// moment the tick fired; the model derives the real frame delta from
// consecutive ticks rather than trusting the nominal rate.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given frame rate.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
