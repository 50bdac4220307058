package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/sim"
)

// Options configures the terminal frontend.
type Options struct {
	FPS           int // Rendered frames per second
	Width, Height int // Initial terminal size, replaced on the first resize
	Assets        core.Assets
	Logger        *log.Logger
}

// Model is the Bubble Tea model driving one simulation.
type Model struct {
	sim        *sim.Simulation
	screen     *core.Screen
	renderer   *Renderer
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	fps        int
	width      int // Terminal size
	height     int
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(s *sim.Simulation, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		sim:        s,
		screen:     core.NewScreen(opts.Width, max(0, opts.Height-1)), // Short help is one row
		renderer:   NewRenderer(opts.Assets),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
		fps:        opts.FPS,
		width:      opts.Width,
		height:     opts.Height,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, m.viewport(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Presses are buffered until the next
// frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the help footer below the play area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the play area to the terminal minus the help footer.
func (m Model) layout() {
	m.screen.Resize(m.width, max(0, m.height-m.helpHeight()))
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// handleTick runs one simulation frame with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.fps)
	m.lastTick = now

	m.sim.Frame(dt, &m.inputFrame)
	m.inputFrame.Clear()

	if m.sim.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

func (m Model) viewport() Viewport {
	cfg := m.sim.Config()
	return NewViewport(cfg.Screen.Width, cfg.Screen.Height, m.screen.Width(), m.screen.Height())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.sim)

	dir := filepath.Join(os.Getenv("HOME"), ".paints", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("paints_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.sim)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given simulation.
func Run(s *sim.Simulation, opts Options) error {
	p := tea.NewProgram(
		NewModel(s, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
