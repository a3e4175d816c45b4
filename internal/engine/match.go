package engine

// FindMatches scans every row and column for runs of three or more
// same-colored tokens and returns the member cells, deduplicated and in
// row-major order. Empty cells and tokens already pending removal never
// start or extend a run. Pure function of grid contents: identical grids
// always yield identical results.
func (e *Engine) FindMatches() []Coord {
	matched := make([]bool, e.width*e.height)

	// Horizontal runs, row by row.
	for row := 0; row < e.height; row++ {
		runStart := 0
		runColor := -1
		runLen := 0
		flush := func(end int) {
			if runLen >= 3 {
				for col := runStart; col < end; col++ {
					matched[row*e.width+col] = true
				}
			}
		}
		for col := 0; col <= e.width; col++ {
			color := e.matchColor(col, row)
			if color != -1 && color == runColor {
				runLen++
				continue
			}
			flush(col)
			runStart = col
			runColor = color
			runLen = 1
		}
	}

	// Vertical runs, column by column.
	for col := 0; col < e.width; col++ {
		runStart := 0
		runColor := -1
		runLen := 0
		flush := func(end int) {
			if runLen >= 3 {
				for row := runStart; row < end; row++ {
					matched[row*e.width+col] = true
				}
			}
		}
		for row := 0; row <= e.height; row++ {
			color := e.matchColor(col, row)
			if color != -1 && color == runColor {
				runLen++
				continue
			}
			flush(row)
			runStart = row
			runColor = color
			runLen = 1
		}
	}

	result := make([]Coord, 0)
	for row := 0; row < e.height; row++ {
		for col := 0; col < e.width; col++ {
			if matched[row*e.width+col] {
				result = append(result, Coord{Col: col, Row: row})
			}
		}
	}
	return result
}

// matchColor returns the color a cell contributes to run scanning, or
// -1 for empty, out-of-bounds or pending-removal cells.
func (e *Engine) matchColor(col, row int) int {
	t := e.at(col, row)
	if t == nil || t.Pending {
		return -1
	}
	return t.Color
}
