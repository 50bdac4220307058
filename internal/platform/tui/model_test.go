package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paints/internal/core"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(newTestSim(t), Options{Width: 80, Height: 24})

	if m.fps != core.DefaultConfig().TickRate {
		t.Errorf("fps = %d, expected %d", m.fps, core.DefaultConfig().TickRate)
	}
	if m.logger == nil || m.logger == log.Default() {
		t.Error("a model without a logger should get its own discarding one")
	}
	if m.screen.Height() != 23 {
		t.Errorf("play area has %d rows, expected one row left for help", m.screen.Height())
	}
}

func TestNewModelKeepsStderrQuiet(t *testing.T) {
	var buf bytes.Buffer
	log.Default().SetOutput(&buf)
	t.Cleanup(func() { log.Default().SetOutput(os.Stderr) })

	// A file in place of HOME makes the screenshot directory impossible to create
	home := filepath.Join(t.TempDir(), "home")
	if err := os.WriteFile(home, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)

	m := NewModel(newTestSim(t), Options{Width: 80, Height: 24})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if buf.Len() != 0 {
		t.Errorf("default logger wrote to the shared output: %q", buf.String())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(newTestSim(t), Options{Width: 80, Height: 24})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if view := next.(Model).View(); strings.TrimSpace(view) != "" {
		t.Errorf("view after quitting = %q, expected empty", view)
	}
}
