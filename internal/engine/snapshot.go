package engine

// TokenView is a read-only copy of one grid cell for rendering.
// Present is false for empty cells; the remaining fields are then zero.
type TokenView struct {
	Present bool
	Col     int
	Row     int
	RenderY float64
	Color   int
	Scale   float64
	Opacity float64
	Pending bool
	Fresh   bool
}

// Snapshot is the engine's complete observable state, deep-copied so
// the renderer can never corrupt engine invariants. Taken once per
// frame by the platform.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Phase  Phase

	Points   int
	Attempts int

	Cells []TokenView // Row-major, length Width*Height

	Revealed      []bool // Row-major reveal map
	RevealedCount int
	TotalCells    int
	ColorFade     float64
	TokenFade     float64
	OverlayFade   float64

	HasSelection   bool
	SelCol, SelRow int

	Particles []Particle

	ImageRef string
}

// Snapshot returns a read-only copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]TokenView, len(e.grid))
	for i, t := range e.grid {
		if t == nil {
			continue
		}
		cells[i] = TokenView{
			Present: true,
			Col:     t.Col,
			Row:     t.Row,
			RenderY: t.RenderY,
			Color:   t.Color,
			Scale:   t.Scale,
			Opacity: t.Opacity,
			Pending: t.Pending,
			Fresh:   t.Fresh,
		}
	}

	revealed := make([]bool, len(e.revealed))
	copy(revealed, e.revealed)

	particles := make([]Particle, len(e.particles))
	copy(particles, e.particles)

	return Snapshot{
		Tick:          e.tick,
		Width:         e.width,
		Height:        e.height,
		Phase:         e.phase,
		Points:        e.points,
		Attempts:      e.attempts,
		Cells:         cells,
		Revealed:      revealed,
		RevealedCount: e.revealedCount,
		TotalCells:    e.width * e.height,
		ColorFade:     e.colorFade,
		TokenFade:     e.tokenFade,
		OverlayFade:   e.overlayFade,
		HasSelection:  e.hasSelection,
		SelCol:        e.selCol,
		SelRow:        e.selRow,
		Particles:     particles,
		ImageRef:      e.imageRef,
	}
}

// Cell returns the view at (col, row). Out-of-bounds cells read as absent.
func (s *Snapshot) Cell(col, row int) TokenView {
	if col < 0 || col >= s.Width || row < 0 || row >= s.Height {
		return TokenView{}
	}
	return s.Cells[row*s.Width+col]
}

// IsRevealed reports whether a cell of the hidden image is disclosed.
func (s *Snapshot) IsRevealed(col, row int) bool {
	if col < 0 || col >= s.Width || row < 0 || row >= s.Height {
		return false
	}
	return s.Revealed[row*s.Width+col]
}

// RevealFraction returns the disclosed share of the image, 0..1.
func (s *Snapshot) RevealFraction() float64 {
	if s.TotalCells == 0 {
		return 0
	}
	return float64(s.RevealedCount) / float64(s.TotalCells)
}

// Hash returns a cheap digest of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Phase)    //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Points)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Attempts) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.RevealedCount)

	for _, c := range s.Cells {
		if !c.Present {
			h = h * 31
			continue
		}
		h = h*31 + uint64(c.Color) //#nosec G115 -- hash computation
		h = h*31 + hashFloat(c.RenderY)
		h = h*31 + hashFloat(c.Scale)
		h = h*31 + hashFloat(c.Opacity)
		if c.Pending {
			h++
		}
	}
	for _, r := range s.Revealed {
		h *= 31
		if r {
			h++
		}
	}
	for _, p := range s.Particles {
		h = h*31 + hashFloat(p.X)
		h = h*31 + hashFloat(p.Y)
	}
	h = h*31 + hashFloat(s.ColorFade)
	h = h*31 + hashFloat(s.TokenFade)
	h = h*31 + hashFloat(s.OverlayFade)
	return h
}

// hashFloat folds a float into the hash with fixed precision so equal
// simulations always digest equally.
func hashFloat(f float64) uint64 {
	return uint64(int64(f * 10000)) //#nosec G115 -- hash computation
}
