// Package tui is the terminal frontend: a Bubble Tea model per session,
// key bindings, lipgloss styling, the replay browser and the SSH server.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/session"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// helpHeight is the number of rows below the game reserved for key help.
const helpHeight = 1

// Model is the Bubble Tea model for a blockdrop session.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	theme      Theme
	keyMapper  *KeyMapper
	help       help.Model
	width      int
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a Bubble Tea model driving the given session.
func NewModel(s *session.Session, theme Theme, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		session:    s,
		screen:     core.NewScreen(width, max(height-helpHeight, 0)),
		theme:      theme,
		keyMapper:  NewKeyMapper(),
		help:       h,
		width:      width,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.session.Finish()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step with the input collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	// A finished game is frozen; stop ticking until the player quits.
	if res.State.GameOver {
		return m, nil
	}
	return m, tickCmd(m.session.TickDuration())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Game().Render(m.screen)
	helpLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keyMapper.Keys()))
	return RenderScreen(m.screen, m.theme) + "\n" + helpLine
}

// Run starts the Bubble Tea program for the session and journals it on exit.
func Run(s *session.Session, theme Theme, width, height int) error {
	p := tea.NewProgram(
		NewModel(s, theme, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	s.Finish()
	return err
}
