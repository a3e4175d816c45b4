// Package puzzles defines the picture calendar: the set of hidden
// images a player can uncover, one per calendar day.
// This package depends on core but core does not depend on puzzles.
package puzzles

import (
	"fmt"

	"github.com/vovakirdan/tui-mosaic/internal/core"
)

// ArtCell is one cell of a hidden picture.
type ArtCell struct {
	Glyph rune
	Color core.Color
}

// Puzzle is a single calendar entry: a hidden picture plus the board
// parameters used to uncover it.
type Puzzle struct {
	ID      string // Calendar date in YYYY-MM-DD form
	Title   string
	Width   int
	Height  int
	Palette int       // Token colors in play, 0 means the engine default
	Art     []ArtCell // Row-major, Width*Height cells
}

// At returns the art cell at the given board coordinates.
func (p *Puzzle) At(col, row int) ArtCell {
	return p.Art[row*p.Width+col]
}

// Validate checks that the puzzle definition is internally consistent.
func (p *Puzzle) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("puzzles: puzzle has no id")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("puzzles: %s: bad size %dx%d", p.ID, p.Width, p.Height)
	}
	if len(p.Art) != p.Width*p.Height {
		return fmt.Errorf("puzzles: %s: art has %d cells, expected %d",
			p.ID, len(p.Art), p.Width*p.Height)
	}
	if p.Palette < 0 || (p.Palette > 0 && p.Palette < 3) {
		return fmt.Errorf("puzzles: %s: palette %d is unplayable", p.ID, p.Palette)
	}
	return nil
}

// Calendar holds all known puzzles in calendar order.
type Calendar struct {
	Puzzles []Puzzle
}

// ByID finds a puzzle by its calendar date.
func (c *Calendar) ByID(id string) (*Puzzle, bool) {
	for i := range c.Puzzles {
		if c.Puzzles[i].ID == id {
			return &c.Puzzles[i], true
		}
	}
	return nil, false
}

// IDs returns all puzzle IDs in calendar order.
func (c *Calendar) IDs() []string {
	ids := make([]string, len(c.Puzzles))
	for i := range c.Puzzles {
		ids[i] = c.Puzzles[i].ID
	}
	return ids
}

// Latest returns the last puzzle whose ID does not sort after the given
// date, falling back to the first puzzle. YYYY-MM-DD IDs sort
// lexicographically in calendar order, so no date parsing is needed.
func (c *Calendar) Latest(date string) (*Puzzle, bool) {
	if len(c.Puzzles) == 0 {
		return nil, false
	}
	best := -1
	for i := range c.Puzzles {
		if c.Puzzles[i].ID <= date && (best == -1 || c.Puzzles[i].ID > c.Puzzles[best].ID) {
			best = i
		}
	}
	if best == -1 {
		return &c.Puzzles[0], true
	}
	return &c.Puzzles[best], true
}
