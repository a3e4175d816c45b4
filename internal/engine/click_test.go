package engine

import (
	"testing"
)

func TestClickSelectsThenSwapsAdjacent(t *testing.T) {
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())

	colorA := e.at(2, 2).Color
	colorB := e.at(2, 3).Color

	e.HandleClick(2, 2)
	snap := e.Snapshot()
	if !snap.HasSelection || snap.SelCol != 2 || snap.SelRow != 2 {
		t.Fatalf("first click should select (2,2), got selection=%v (%d,%d)",
			snap.HasSelection, snap.SelCol, snap.SelRow)
	}

	e.HandleClick(2, 3)
	snap = e.Snapshot()
	if snap.HasSelection {
		t.Error("selection must clear after the second click")
	}
	if snap.Attempts != 1 {
		t.Errorf("adjacent swap should count one attempt, got %d", snap.Attempts)
	}
	if e.at(2, 2).Color != colorB || e.at(2, 3).Color != colorA {
		t.Error("tokens should exchange cells on an adjacent swap")
	}
}

func TestClickNonAdjacentClearsWithoutSwap(t *testing.T) {
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())

	colorA := e.at(2, 2).Color
	colorB := e.at(4, 4).Color

	e.HandleClick(2, 2)
	e.HandleClick(4, 4)

	snap := e.Snapshot()
	if snap.HasSelection {
		t.Error("selection must clear even for a non-adjacent second click")
	}
	if snap.Attempts != 0 {
		t.Errorf("non-adjacent click must not count an attempt, got %d", snap.Attempts)
	}
	if e.at(2, 2).Color != colorA || e.at(4, 4).Color != colorB {
		t.Error("non-adjacent click must not move tokens")
	}
}

func TestClickDiagonalIsNotAdjacent(t *testing.T) {
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())

	e.HandleClick(3, 3)
	e.HandleClick(4, 4)

	if e.Attempts() != 0 {
		t.Error("diagonal neighbors must not swap")
	}
}

func TestClickOutOfBoundsIgnored(t *testing.T) {
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())

	e.HandleClick(-1, 0)
	e.HandleClick(0, -1)
	e.HandleClick(8, 0)
	e.HandleClick(0, 8)

	snap := e.Snapshot()
	if snap.HasSelection {
		t.Error("out-of-bounds clicks must not select")
	}

	// A valid selection survives a subsequent out-of-bounds click.
	e.HandleClick(1, 1)
	e.HandleClick(100, 100)
	snap = e.Snapshot()
	if !snap.HasSelection {
		t.Error("out-of-bounds click must not clear an existing selection")
	}
}

func TestClickRejectedOutsideActivePhase(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	setGrid(e, colors)

	e.Advance() // Enters removing
	if e.Phase() != PhaseRemoving {
		t.Fatalf("setup failed, phase = %v", e.Phase())
	}

	e.HandleClick(5, 5)
	if e.Snapshot().HasSelection {
		t.Error("clicks during removal must be rejected")
	}

	for e.Phase() == PhaseRemoving {
		e.Advance()
	}
	if e.Phase() != PhasePaused {
		t.Fatalf("setup failed, phase = %v", e.Phase())
	}
	e.HandleClick(5, 5)
	if e.Snapshot().HasSelection {
		t.Error("clicks during pause must be rejected")
	}
}

func TestClickRejectedWhileFalling(t *testing.T) {
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())
	e.setCell(3, 7, nil) // Board no longer settled

	e.HandleClick(1, 1)
	if e.Snapshot().HasSelection {
		t.Error("clicks must be rejected while cells are empty or falling")
	}
}

func TestClickUsesLayoutMapping(t *testing.T) {
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())
	e.SetLayout(Layout{OriginX: 10, OriginY: 4, CellW: 4, CellH: 2})

	// Pixel (18, 8) -> cell (2, 2); pixel (18, 10) -> cell (2, 3).
	e.HandleClick(18, 8)
	snap := e.Snapshot()
	if !snap.HasSelection || snap.SelCol != 2 || snap.SelRow != 2 {
		t.Fatalf("layout click should select (2,2), got (%d,%d)", snap.SelCol, snap.SelRow)
	}

	e.HandleClick(18, 10)
	if e.Attempts() != 1 {
		t.Error("layout-mapped adjacent cells should swap")
	}

	// Clicks left of the board origin never select.
	e.HandleClick(9, 8)
	if e.Snapshot().HasSelection {
		t.Error("click left of the board origin must be ignored")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{OriginX: 7, OriginY: 3, CellW: 3, CellH: 2}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x, y := l.CellOrigin(col, row)
			gotCol, gotRow, ok := l.CellAt(x, y)
			if !ok || gotCol != col || gotRow != row {
				t.Fatalf("CellAt(CellOrigin(%d,%d)) = (%d,%d,%v)", col, row, gotCol, gotRow, ok)
			}
			// Every point inside the cell maps back to it.
			gotCol, gotRow, ok = l.CellAt(x+l.CellW-1, y+l.CellH-1)
			if !ok || gotCol != col || gotRow != row {
				t.Fatalf("cell interior point maps to (%d,%d,%v), expected (%d,%d)",
					gotCol, gotRow, ok, col, row)
			}
		}
	}
}

func TestSwapWithoutMatchIsKept(t *testing.T) {
	// Useless swaps are accepted and never rolled back.
	e := newTestEngine(t, 1)
	setGrid(e, checkerboard())

	colorA := e.at(0, 0).Color
	colorB := e.at(1, 0).Color

	e.HandleClick(0, 0)
	e.HandleClick(1, 0)
	e.Advance()

	if e.Phase() != PhaseActive {
		t.Fatalf("swap without a match should stay active, phase = %v", e.Phase())
	}
	if e.at(0, 0).Color != colorB || e.at(1, 0).Color != colorA {
		t.Error("swap without a match must not be rolled back")
	}
	if e.Attempts() != 1 {
		t.Errorf("attempts = %d, expected 1", e.Attempts())
	}
}

func TestSwapCreatingMatchClears(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	// Row 2: 0 at columns 1 and 2; a 0 sits at (3,3). Swapping (3,3) up
	// to (3,2) completes the run.
	colors[2][1], colors[2][2] = 0, 0
	colors[3][3] = 0
	setGrid(e, colors)

	if m := e.FindMatches(); len(m) != 0 {
		t.Fatalf("setup grid must start without matches, got %v", m)
	}

	e.HandleClick(3, 3)
	e.HandleClick(3, 2)
	e.Advance()

	if e.Phase() != PhaseRemoving {
		t.Fatalf("swap completing a run should enter removing, phase = %v", e.Phase())
	}
	if e.Points() != 30 {
		t.Errorf("points = %d, expected 30", e.Points())
	}
}
