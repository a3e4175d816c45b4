package engine

import (
	"testing"
)

// containsCoord reports whether the match set includes a cell.
func containsCoord(matches []Coord, col, row int) bool {
	for _, c := range matches {
		if c.Col == col && c.Row == row {
			return true
		}
	}
	return false
}

func TestFindMatchesHorizontalRun(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[3][2], colors[3][3], colors[3][4] = 0, 0, 0
	setGrid(e, colors)

	matches := e.FindMatches()
	if len(matches) != 3 {
		t.Fatalf("expected exactly 3 matched cells, got %d: %v", len(matches), matches)
	}
	for col := 2; col <= 4; col++ {
		if !containsCoord(matches, col, 3) {
			t.Errorf("missing cell (%d,3) in match set", col)
		}
	}
}

func TestFindMatchesFourRun(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[5][1], colors[5][2], colors[5][3], colors[5][4] = 0, 0, 0, 0
	setGrid(e, colors)

	matches := e.FindMatches()
	if len(matches) != 4 {
		t.Fatalf("expected exactly 4 matched cells, got %d: %v", len(matches), matches)
	}
	for col := 1; col <= 4; col++ {
		if !containsCoord(matches, col, 5) {
			t.Errorf("missing cell (%d,5) in match set", col)
		}
	}
}

func TestFindMatchesVerticalRun(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[2][6], colors[3][6], colors[4][6] = 0, 0, 0
	setGrid(e, colors)

	matches := e.FindMatches()
	if len(matches) != 3 {
		t.Fatalf("expected exactly 3 matched cells, got %d: %v", len(matches), matches)
	}
	for row := 2; row <= 4; row++ {
		if !containsCoord(matches, 6, row) {
			t.Errorf("missing cell (6,%d) in match set", row)
		}
	}
}

func TestFindMatchesLShapeDeduplicates(t *testing.T) {
	// Horizontal run (0..2, 0) and vertical run (0, 0..2) sharing the
	// corner cell. The union has 5 cells, the corner counted once.
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	colors[1][0], colors[2][0] = 0, 0
	setGrid(e, colors)

	matches := e.FindMatches()
	if len(matches) != 5 {
		t.Fatalf("L-shape should match 5 distinct cells, got %d: %v", len(matches), matches)
	}
	expected := []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}}
	for _, c := range expected {
		if !containsCoord(matches, c.Col, c.Row) {
			t.Errorf("missing cell (%d,%d) in L-shape match", c.Col, c.Row)
		}
	}
}

func TestFindMatchesIgnoresPendingTokens(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[4][1], colors[4][2], colors[4][3] = 0, 0, 0
	setGrid(e, colors)

	// Flagging the middle token breaks the run.
	e.at(2, 4).Pending = true

	if matches := e.FindMatches(); len(matches) != 0 {
		t.Errorf("pending tokens must not extend runs, got %v", matches)
	}
}

func TestFindMatchesIgnoresEmptyCells(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[6][3], colors[6][4], colors[6][5] = 0, 0, 0
	setGrid(e, colors)

	e.setCell(4, 6, nil)

	if matches := e.FindMatches(); len(matches) != 0 {
		t.Errorf("empty cells must not extend runs, got %v", matches)
	}
}

func TestFindMatchesIsPure(t *testing.T) {
	e := newTestEngine(t, 1)
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	setGrid(e, colors)

	first := e.FindMatches()
	second := e.FindMatches()
	if len(first) != len(second) {
		t.Fatalf("repeated scans differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated scans differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
