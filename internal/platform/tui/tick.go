// Package tui runs the paints simulation in a terminal with Bubble Tea.
// It maps keys and mouse clicks to actions, feeds real frame times to the
// simulation and draws the world into a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps a single frame so a stalled terminal does not fast-forward
// the round.
const maxFrame = 250 * time.Millisecond

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time since the previous tick, clamped to
// [0, maxFrame]. The first tick of a run counts as one nominal frame.
func frameDelta(prev, now time.Time, fps int) time.Duration {
	if prev.IsZero() {
		return time.Second / time.Duration(fps)
	}
	dt := now.Sub(prev)
	switch {
	case dt < 0:
		return 0
	case dt > maxFrame:
		return maxFrame
	}
	return dt
}
