package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockdrop/internal/replay"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

const maxRecordings = 200 // Max journal entries to load

// Recordings is the part of the store the browser needs.
type Recordings interface {
	Recordings(limit int) ([]storage.Recording, error)
	DeleteRecording(id int64) error
}

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Verify  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Verify, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model listing journaled sessions.
type BrowserModel struct {
	store      Recordings
	recordings []storage.Recording
	table      table.Model
	help       help.Model
	keys       BrowserKeyMap
	status     string
	width      int
	height     int
	quitting   bool
}

// NewBrowserModel creates a new replay browser.
func NewBrowserModel(store Recordings, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Date", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Rows", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Where", Width: 9},
		{Title: "End", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, status, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the newest recordings from the store.
func (m *BrowserModel) load() {
	if m.store == nil {
		m.recordings = nil
		m.status = "No replay journal available."
		m.updateTableRows()
		return
	}

	recs, err := m.store.Recordings(maxRecordings)
	if err != nil {
		m.recordings = nil
		m.status = fmt.Sprintf("Cannot load recordings: %v", err)
	} else {
		m.recordings = recs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded recordings.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.recordings))
	for i, r := range m.recordings {
		end := "quit"
		if r.GameOver {
			end = "game over"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.RowsCleared),
			fmt.Sprintf("%d", r.PiecesLocked),
			fmt.Sprintf("%d", r.FinalTick),
			r.Frontend,
			end,
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// selected returns the recording under the cursor.
func (m BrowserModel) selected() (storage.Recording, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recordings) {
		return storage.Recording{}, false
	}
	return m.recordings[i], true
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			if r, ok := m.selected(); ok {
				m.status = verifyStatus(r)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.selected(); ok && m.store != nil {
				if err := m.store.DeleteRecording(r.ID); err != nil {
					m.status = fmt.Sprintf("Cannot delete #%d: %v", r.ID, err)
				} else {
					m.status = fmt.Sprintf("Deleted #%d", r.ID)
				}
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// verifyStatus re-simulates a stored recording and describes the outcome.
func verifyStatus(r storage.Recording) string {
	rec, err := replay.FromStorage(r)
	if err != nil {
		return fmt.Sprintf("#%d: %v", r.ID, err)
	}
	snap, err := replay.Verify(rec)
	if err != nil {
		return fmt.Sprintf("#%d: %v", r.ID, err)
	}
	return fmt.Sprintf("#%d verified: score %d after %d ticks", r.ID, snap.Score, snap.Tick)
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAY JOURNAL", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.recordings) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions journaled yet.\nPlay a game to record one!")
	}

	return m.table.View()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunBrowser runs the replay browser until the user quits.
func RunBrowser(store Recordings, width, height int) error {
	p := tea.NewProgram(
		NewBrowserModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
