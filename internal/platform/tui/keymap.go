package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PuzzleKeyMap defines the key bindings while playing a puzzle.
type PuzzleKeyMap struct {
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PuzzleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PuzzleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Back, k.Quit}}
}

// DefaultPuzzleKeyMap returns default key bindings for puzzle play.
func DefaultPuzzleKeyMap() PuzzleKeyMap {
	return PuzzleKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "calendar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CalendarKeyMap defines the key bindings for the calendar picker.
type CalendarKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Progress key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CalendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Progress, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CalendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Progress, k.Quit},
	}
}

// DefaultCalendarKeyMap returns default key bindings for the calendar.
func DefaultCalendarKeyMap() CalendarKeyMap {
	return CalendarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "previous day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next day"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Progress: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "progress"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
