package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

// ProgressKeyMap defines the key bindings for the progress table.
type ProgressKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for the progress screen.
type ProgressModel struct {
	cal       *puzzles.Calendar
	store     *storage.Store
	table     table.Model
	help      help.Model
	keys      ProgressKeyMap
	width     int
	height    int
	solved    int
	quitting  bool
	goingBack bool
}

// NewProgressModel creates a progress model over the whole calendar.
func NewProgressModel(cal *puzzles.Calendar, store *storage.Store, width, height int) ProgressModel {
	keys := DefaultProgressKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		cal:    cal,
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

// createTable creates the table with appropriate columns.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Puzzle", Width: 16},
		{Title: "Status", Width: 8},
		{Title: "Points", Width: 8},
		{Title: "Swaps", Width: 7},
		{Title: "Solved at", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// loadRows fills the table with one row per calendar day.
func (m *ProgressModel) loadRows() {
	var progress map[string]*storage.Progress
	if m.store != nil {
		progress, _ = m.store.AllProgress()
	}

	m.solved = 0
	rows := make([]table.Row, 0, len(m.cal.Puzzles))
	for _, p := range m.cal.Puzzles {
		status, points, attempts, solvedAt := "hidden", "-", "-", "-"
		if pr, ok := progress[p.ID]; ok {
			if pr.Solved {
				m.solved++
				status = "solved"
				if !pr.SolvedAt.IsZero() {
					solvedAt = pr.SolvedAt.Format("Jan 02 15:04")
				}
			} else {
				status = "started"
			}
			points = fmt.Sprintf("%d", pr.Points)
			attempts = fmt.Sprintf("%d", pr.Attempts)
		}
		rows = append(rows, table.Row{p.ID, p.Title, status, points, attempts, solvedAt})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress screen.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("PROGRESS - %d/%d solved", m.solved, len(m.cal.Puzzles))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to the calendar.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgress runs the progress screen.
// Returns true if user wants to go back to the calendar, false if quitting.
func RunProgress(cal *puzzles.Calendar, store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewProgressModel(cal, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProgressModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
