// Package engine implements the mosaic match-3 puzzle simulation.
// It is UI-agnostic and deterministic: the host calls Advance once per
// tick, forwards pointer clicks, and renders from read-only snapshots.
package engine

// Token is a single colored, swappable, matchable grid piece.
// Its grid row is always the logical resting row; RenderY lags behind
// during a fall so the platform can draw the motion.
type Token struct {
	Col, Row int

	RenderY float64 // Continuous vertical position in row units
	VelY    float64 // Vertical velocity, row units per tick

	Color   int     // Index into the color palette
	Scale   float64 // 1.0 normal, shrinking to 0 during removal
	Opacity float64 // 0 during spawn fade-in, 1 once settled

	Pending bool // Part of a cleared match, shrinking out
	Fresh   bool // Newly spawned above the grid, fading in
}

// settled reports whether the token's render position has reached its
// logical row. Fade-in may still be running on a settled token.
func (t *Token) settled() bool {
	return t.RenderY == float64(t.Row)
}

// Coord identifies a grid cell.
type Coord struct {
	Col, Row int
}

// adjacent reports whether two cells are exactly one grid step apart
// (Manhattan-adjacent, not diagonal).
func adjacent(a, b Coord) bool {
	dc := a.Col - b.Col
	dr := a.Row - b.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc+dr == 1
}
