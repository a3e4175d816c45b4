package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mosaic/internal/config"
)

// Phase is the engine's current top-level mode. Phases are mutually
// exclusive by construction: exactly one is active per tick.
type Phase int

const (
	PhaseActive    Phase = iota // Gravity, fade-in and match scanning run
	PhaseRemoving               // Matched tokens are shrinking out
	PhasePaused                 // Cooldown after a removal before gravity resumes
	PhaseRevealing              // Final full-image disclosure animation
	PhaseComplete               // Terminal: only decorative particles update
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseRemoving:
		return "removing"
	case PhasePaused:
		return "paused"
	case PhaseRevealing:
		return "revealing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Construction errors. These are the only failures the engine signals;
// everything at runtime is defensively clamped or ignored instead.
var (
	ErrBadDimensions   = errors.New("engine: grid dimensions must be positive")
	ErrPaletteTooSmall = errors.New("engine: palette needs at least 3 colors")
	ErrBadThreshold    = errors.New("engine: reveal threshold must be in (0, 1]")
)

// Options selects per-session parameters. Zero values fall back to the
// tuning config, so callers usually set only Seed and PreSolved.
type Options struct {
	Width       int
	Height      int
	PaletteSize int
	Seed        int64

	// ImageRef names the hidden picture. The engine treats it as an
	// opaque identity and simply echoes it in snapshots.
	ImageRef string

	// PreSolved starts the engine directly in the Complete phase,
	// skipping gameplay. Used for previously finished puzzles.
	PreSolved bool
}

// Engine owns the complete puzzle state: the token grid, the phase
// machine, reveal bookkeeping and the post-completion particle system.
// It is exclusively owned by its host goroutine; one Advance call is
// one logical tick.
type Engine struct {
	width   int
	height  int
	palette int
	rng     *rand.Rand
	cfg     config.EngineConfig

	grid []*Token // Row-major, nil = empty cell

	phase      Phase
	pauseTicks int
	tick       uint64

	// Player selection: at most one cell awaiting a second click.
	hasSelection   bool
	selCol, selRow int

	// Reveal bookkeeping. revealed is monotonic until completion forces
	// every cell true.
	revealed      []bool
	revealedCount int
	revealArmed   bool // Threshold crossed, reveal starts after removal ends
	colorFade     float64
	tokenFade     float64
	overlayFade   float64

	particles []Particle

	points   int
	attempts int

	imageRef string
	layout   Layout
}

// New builds an engine with a legal initial grid: randomly filled, then
// re-rolled until no run of three or more remains.
func New(cfg config.EngineConfig, opts Options) (*Engine, error) {
	width := opts.Width
	if width == 0 {
		width = cfg.Grid.Width
	}
	height := opts.Height
	if height == 0 {
		height = cfg.Grid.Height
	}
	palette := opts.PaletteSize
	if palette == 0 {
		palette = cfg.Grid.PaletteSize
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if palette < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, palette)
	}
	if cfg.Reveal.Threshold <= 0 || cfg.Reveal.Threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, cfg.Reveal.Threshold)
	}

	e := &Engine{
		width:       width,
		height:      height,
		palette:     palette,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		cfg:         cfg,
		grid:        make([]*Token, width*height),
		revealed:    make([]bool, width*height),
		tokenFade:   1,
		overlayFade: 1,
		imageRef:    opts.ImageRef,
		layout:      DefaultLayout(),
	}

	e.fill()

	if opts.PreSolved {
		e.forceComplete()
	}

	return e, nil
}

// SetLayout installs the pointer-to-cell mapping used by HandleClick.
func (e *Engine) SetLayout(l Layout) {
	e.layout = l
}

// fill seeds every cell with a random color, then re-rolls matched
// cells until a scan comes up empty. Convergence is probabilistic but
// fast: a re-rolled triple rarely re-forms.
func (e *Engine) fill() {
	for row := 0; row < e.height; row++ {
		for col := 0; col < e.width; col++ {
			e.grid[row*e.width+col] = e.newToken(col, row)
		}
	}

	for {
		matches := e.FindMatches()
		if len(matches) == 0 {
			return
		}
		for _, c := range matches {
			e.at(c.Col, c.Row).Color = e.rng.Intn(e.palette)
		}
	}
}

// newToken creates a settled token at the given cell.
func (e *Engine) newToken(col, row int) *Token {
	return &Token{
		Col:     col,
		Row:     row,
		RenderY: float64(row),
		Color:   e.rng.Intn(e.palette),
		Scale:   1,
		Opacity: 1,
	}
}

// forceComplete jumps straight to the terminal phase with the full
// image disclosed, as if the reveal animation had finished.
func (e *Engine) forceComplete() {
	for i := range e.revealed {
		e.revealed[i] = true
	}
	e.revealedCount = len(e.revealed)
	e.revealArmed = true
	e.colorFade = 1
	e.tokenFade = 0
	e.overlayFade = 0
	e.phase = PhaseComplete
	e.particles = make([]Particle, 0, e.cfg.Particles.Max)
}

// at returns the token at (col, row), or nil for empty or out of bounds.
func (e *Engine) at(col, row int) *Token {
	if col < 0 || col >= e.width || row < 0 || row >= e.height {
		return nil
	}
	return e.grid[row*e.width+col]
}

// setCell stores a token (or nil) at (col, row).
func (e *Engine) setCell(col, row int, t *Token) {
	e.grid[row*e.width+col] = t
}

// Advance runs exactly one logical tick. Earlier phases suppress all
// later logic: a completed puzzle only animates particles, a running
// reveal ignores the board, and so on down to the default Active work
// of gravity plus match scanning.
func (e *Engine) Advance() {
	e.tick++

	switch e.phase {
	case PhaseComplete:
		e.updateParticles()
		return

	case PhaseRevealing:
		e.stepReveal()
		return

	case PhasePaused:
		e.pauseTicks--
		if e.pauseTicks <= 0 {
			e.phase = PhaseActive
		}
		return

	case PhaseRemoving:
		e.stepRemoval()
		return
	}

	// Active: settle the board first, scan only once nothing moves.
	if falling := e.stepGravity(); falling {
		return
	}

	matches := e.FindMatches()
	if len(matches) == 0 {
		return
	}
	e.clearMatches(matches)
}

// clearMatches marks matched tokens for removal, scores them, records
// their cells as revealed and switches to the removal animation.
func (e *Engine) clearMatches(matches []Coord) {
	for _, c := range matches {
		t := e.at(c.Col, c.Row)
		if t == nil || t.Pending {
			continue
		}
		t.Pending = true
		e.points += e.cfg.Scoring.PointsPerToken
		e.markRevealed(c.Col, c.Row)
	}
	e.phase = PhaseRemoving
	e.checkRevealThreshold()
}

// stepRemoval shrinks every pending token; tokens reaching zero scale
// are deleted from the grid. When the last one is gone the engine either
// starts the armed reveal or pauses briefly before gravity resumes.
func (e *Engine) stepRemoval() {
	stillShrinking := false
	for i, t := range e.grid {
		if t == nil || !t.Pending {
			continue
		}
		t.Scale -= e.cfg.Fades.Shrink
		if t.Scale <= 0 {
			e.grid[i] = nil
			continue
		}
		stillShrinking = true
	}
	if stillShrinking {
		return
	}

	if e.revealArmed {
		e.phase = PhaseRevealing
		return
	}
	e.pauseTicks = e.cfg.Reveal.PauseTicks
	e.phase = PhasePaused
}

// HandleClick processes a pointer click in screen coordinates.
//
// Clicks are accepted only while the board is idle: Active phase,
// nothing falling, no reveal armed. The first valid click selects a
// cell; the second attempts a swap when Manhattan-adjacent and always
// clears the selection. A swap that produces no match is deliberately
// kept - the engine never rolls back useless swaps.
func (e *Engine) HandleClick(px, py int) {
	if e.phase != PhaseActive || e.revealArmed {
		return
	}
	if !e.boardSettled() {
		return
	}

	col, row, ok := e.layout.CellAt(px, py)
	if !ok || col < 0 || col >= e.width || row < 0 || row >= e.height {
		return
	}

	if !e.hasSelection {
		e.hasSelection = true
		e.selCol, e.selRow = col, row
		return
	}

	first := Coord{Col: e.selCol, Row: e.selRow}
	second := Coord{Col: col, Row: row}
	e.hasSelection = false

	if adjacent(first, second) {
		e.swap(first, second)
	}
}

// swap exchanges two tokens' grid coordinates and render positions and
// counts the attempt. Defensive: an empty cell leaves the board untouched.
func (e *Engine) swap(a, b Coord) {
	ta := e.at(a.Col, a.Row)
	tb := e.at(b.Col, b.Row)
	if ta == nil || tb == nil {
		return
	}

	e.setCell(a.Col, a.Row, tb)
	e.setCell(b.Col, b.Row, ta)
	ta.Col, tb.Col = tb.Col, ta.Col
	ta.Row, tb.Row = tb.Row, ta.Row
	ta.RenderY, tb.RenderY = tb.RenderY, ta.RenderY

	e.attempts++
}

// boardSettled reports whether every cell holds a fully settled token.
func (e *Engine) boardSettled() bool {
	for _, t := range e.grid {
		if t == nil || t.Pending || !t.settled() {
			return false
		}
	}
	return true
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Points returns the accumulated score.
func (e *Engine) Points() int {
	return e.points
}

// Attempts returns the number of swaps performed.
func (e *Engine) Attempts() int {
	return e.attempts
}
