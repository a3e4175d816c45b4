package engine

// Layout maps pointer coordinates to grid cells. The platform owns the
// actual values (cell size in characters, board offset on screen); the
// engine only requires the mapping to be deterministic and invertible.
type Layout struct {
	OriginX, OriginY int // Screen position of cell (0,0)
	CellW, CellH     int // Cell size in screen units, must be > 0
}

// DefaultLayout maps one screen unit to one cell at the origin.
// Useful for tests that click grid coordinates directly.
func DefaultLayout() Layout {
	return Layout{CellW: 1, CellH: 1}
}

// CellAt converts pointer coordinates to a cell. ok is false when the
// layout is degenerate or the point lies above/left of the origin;
// callers still need to bounds-check against the grid.
func (l Layout) CellAt(px, py int) (col, row int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0, false
	}
	dx := px - l.OriginX
	dy := py - l.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	return dx / l.CellW, dy / l.CellH, true
}

// CellOrigin returns the screen position of a cell's top-left corner.
// It is the inverse of CellAt for the corner point.
func (l Layout) CellOrigin(col, row int) (x, y int) {
	return l.OriginX + col*l.CellW, l.OriginY + row*l.CellH
}
