package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mosaic/internal/core"
	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

// CalendarItem is one selectable day in the calendar picker.
type CalendarItem struct {
	PuzzleID string
	Title    string
	Solved   bool
	Points   int
}

// CalendarModel is the Bubble Tea model for the day picker.
type CalendarModel struct {
	items        []CalendarItem
	cursor       int
	width        int
	height       int
	keys         CalendarKeyMap
	help         help.Model
	quitting     bool
	selected     *CalendarItem
	openProgress bool // True if user pressed Tab for the progress table
}

// NewCalendarModel builds the picker from the calendar and stored progress.
func NewCalendarModel(cal *puzzles.Calendar, store *storage.Store, width, height int) CalendarModel {
	var progress map[string]*storage.Progress
	if store != nil {
		progress, _ = store.AllProgress() // Best effort, markers only
	}

	items := make([]CalendarItem, 0, len(cal.Puzzles))
	cursor, cursorSet := 0, false
	for i, p := range cal.Puzzles {
		item := CalendarItem{PuzzleID: p.ID, Title: p.Title}
		if pr, ok := progress[p.ID]; ok && pr.Solved {
			item.Solved = true
			item.Points = pr.Points
		} else if !cursorSet {
			cursor, cursorSet = i, true // Start on the first unsolved day
		}
		items = append(items, item)
	}

	h := help.New()
	h.ShowAll = false

	return CalendarModel{
		items:  items,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   DefaultCalendarKeyMap(),
		help:   h,
	}
}

// Init initializes the calendar model.
func (m CalendarModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the calendar.
func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for calendar navigation.
func (m CalendarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit picker to start the puzzle
		}

	case key.Matches(msg, m.keys.Progress):
		m.openProgress = true
		return m, tea.Quit // Exit picker to show the progress table
	}

	return m, nil
}

// View renders the calendar.
func (m CalendarModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  M O S A I C  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Pick a day", m.width))
	b.WriteString("\n\n")

	solvedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := "  "
		if item.Solved {
			marker = solvedStyle.Render("✔ ")
		}

		line := fmt.Sprintf("%s%s%s  %s", cursor, marker, item.PuzzleID, item.Title)
		if item.Solved {
			line += fmt.Sprintf("  (%d pts)", item.Points)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected day, or nil if none selected.
func (m CalendarModel) Selected() *CalendarItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m CalendarModel) IsQuitting() bool {
	return m.quitting
}

// WantsProgress returns true if user requested the progress table.
func (m CalendarModel) WantsProgress() bool {
	return m.openProgress
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// CalendarResult holds the result of running the calendar picker.
type CalendarResult struct {
	PuzzleID      string
	Solved        bool
	WantsProgress bool
	Quit          bool
}

// RunCalendar runs the day picker and returns the selection result.
func RunCalendar(cal *puzzles.Calendar, store *storage.Store, cfg core.RuntimeConfig) (CalendarResult, error) {
	model := NewCalendarModel(cal, store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return CalendarResult{}, err
	}

	m, ok := finalModel.(CalendarModel)
	if !ok {
		return CalendarResult{Quit: true}, nil
	}

	result := CalendarResult{}
	switch {
	case m.WantsProgress():
		result.WantsProgress = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.PuzzleID = m.Selected().PuzzleID
		result.Solved = m.Selected().Solved
	}
	return result, nil
}
