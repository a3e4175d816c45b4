package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mosaic/internal/config"
	"github.com/vovakirdan/tui-mosaic/internal/core"
	"github.com/vovakirdan/tui-mosaic/internal/engine"
	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

// PuzzleModel is the Bubble Tea model for playing one puzzle.
type PuzzleModel struct {
	puzzle *puzzles.Puzzle
	eng    *engine.Engine
	screen *core.Screen
	store  *storage.Store
	engCfg config.EngineConfig
	runCfg core.RuntimeConfig
	keys   PuzzleKeyMap
	layout engine.Layout

	quitting       bool
	backToCalendar bool
	resultSaved    bool // Whether the outcome has been persisted
}

// NewPuzzleModel creates a Bubble Tea model for the given puzzle.
// preSolved starts the board in its finished state for puzzles the
// player already solved.
func NewPuzzleModel(pz *puzzles.Puzzle, store *storage.Store, engCfg config.EngineConfig,
	runCfg core.RuntimeConfig, preSolved bool) (PuzzleModel, error) {
	// Use time-based seed if not specified
	if runCfg.Seed == 0 {
		runCfg.Seed = time.Now().UnixNano()
	}

	eng, err := engine.New(engCfg, engine.Options{
		Width:       pz.Width,
		Height:      pz.Height,
		PaletteSize: pz.Palette,
		Seed:        runCfg.Seed,
		ImageRef:    pz.ID,
		PreSolved:   preSolved,
	})
	if err != nil {
		return PuzzleModel{}, err
	}

	layout := boardLayout(runCfg.ScreenW, runCfg.ScreenH, pz.Width, pz.Height)
	eng.SetLayout(layout)

	return PuzzleModel{
		puzzle:      pz,
		eng:         eng,
		screen:      core.NewScreen(runCfg.ScreenW, runCfg.ScreenH),
		store:       store,
		engCfg:      engCfg,
		runCfg:      runCfg,
		keys:        DefaultPuzzleKeyMap(),
		layout:      layout,
		resultSaved: preSolved,
	}, nil
}

// Init starts the tick loop.
func (m PuzzleModel) Init() tea.Cmd {
	return tickCmd(m.runCfg.TickRate)
}

// Update handles messages and updates the model state.
func (m PuzzleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.eng.HandleClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PuzzleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveOutcome()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveOutcome()
		m.backToCalendar = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	return m, nil
}

// restart rebuilds the engine with a fresh seed.
func (m PuzzleModel) restart() (tea.Model, tea.Cmd) {
	m.runCfg.Seed = time.Now().UnixNano()
	eng, err := engine.New(m.engCfg, engine.Options{
		Width:       m.puzzle.Width,
		Height:      m.puzzle.Height,
		PaletteSize: m.puzzle.Palette,
		Seed:        m.runCfg.Seed,
		ImageRef:    m.puzzle.ID,
	})
	if err != nil {
		// The previous construction succeeded with the same parameters,
		// so keep the old board rather than crash the session.
		return m, nil
	}
	eng.SetLayout(m.layout)
	m.eng = eng
	m.resultSaved = false
	return m, nil
}

// handleResize recenters the board for the new terminal size.
func (m PuzzleModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runCfg.ScreenW = msg.Width
	m.runCfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.layout = boardLayout(msg.Width, msg.Height, m.puzzle.Width, m.puzzle.Height)
	m.eng.SetLayout(m.layout)

	return m, nil
}

// handleTick runs one engine tick and persists completion once.
func (m PuzzleModel) handleTick() (tea.Model, tea.Cmd) {
	m.eng.Advance()

	if m.eng.Phase() == engine.PhaseComplete && !m.resultSaved {
		m.saveOutcome()
	}

	return m, tickCmd(m.runCfg.TickRate)
}

// saveOutcome writes the session result, and on completion the solved
// flag, to the store. Best-effort: play continues regardless.
func (m *PuzzleModel) saveOutcome() {
	if m.store == nil || m.resultSaved {
		return
	}

	snap := m.eng.Snapshot()
	if snap.Attempts == 0 && snap.Phase != engine.PhaseComplete {
		return // Nothing happened worth recording
	}

	completed := snap.Phase == engine.PhaseComplete
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(storage.Session{
		PuzzleID:  m.puzzle.ID,
		Points:    snap.Points,
		Attempts:  snap.Attempts,
		Revealed:  snap.RevealedCount,
		Total:     snap.TotalCells,
		Completed: completed,
	})
	if completed {
		//nolint:errcheck // Best-effort save
		m.store.MarkSolved(m.puzzle.ID, snap.Points, snap.Attempts)
	}
	m.resultSaved = true
}

// View renders the current puzzle state.
func (m PuzzleModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.eng.Snapshot()
	renderPuzzle(m.screen, snap, m.puzzle, m.layout)
	return RenderScreen(m.screen)
}

// BackToCalendar reports whether the player left for the calendar.
func (m PuzzleModel) BackToCalendar() bool {
	return m.backToCalendar
}

// IsQuitting reports whether the player quit the program.
func (m PuzzleModel) IsQuitting() bool {
	return m.quitting
}

// Run plays a single puzzle as a standalone Bubble Tea program.
func Run(pz *puzzles.Puzzle, store *storage.Store, engCfg config.EngineConfig,
	runCfg core.RuntimeConfig, preSolved bool) error {
	model, err := NewPuzzleModel(pz, store, engCfg, runCfg, preSolved)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Tile selection is pointer driven
	)

	_, err = p.Run()
	return err
}
