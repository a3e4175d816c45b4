package engine

// stepGravity runs one tick of falling, refilling and spawn fade-in.
// It reports true while anything is still in visual motion or a refill
// happened, which gates match scanning for this tick.
func (e *Engine) stepGravity() bool {
	falling := false

	// Pass one: integrate velocity for tokens whose render position has
	// not yet reached their logical row, clamping on overshoot.
	for _, t := range e.grid {
		if t == nil || t.Pending {
			continue
		}
		target := float64(t.Row)
		if t.RenderY < target {
			t.VelY += e.cfg.Physics.Gravity
			t.RenderY += t.VelY
			if t.RenderY >= target {
				t.RenderY = target
				t.VelY = 0
			} else {
				falling = true
			}
		}
	}

	// Pass two: column-wise compaction from the bottom up. An empty cell
	// pulls the token directly above it down one logical row; the render
	// position keeps falling on its own. An empty top row spawns a fresh
	// token above the grid so it visibly drops and fades in.
	for col := 0; col < e.width; col++ {
		for row := e.height - 1; row >= 1; row-- {
			if e.occupied(col, row) {
				continue
			}
			above := e.at(col, row-1)
			if above == nil || above.Pending {
				continue
			}
			e.setCell(col, row, above)
			e.setCell(col, row-1, nil)
			above.Row = row
			falling = true
		}

		if !e.occupied(col, 0) {
			t := e.newToken(col, 0)
			t.RenderY = -e.cfg.Physics.SpawnOffset
			t.Opacity = 0
			t.Fresh = true
			e.setCell(col, 0, t)
			falling = true
		}
	}

	// Fade-in: freshly spawned tokens gain opacity until fully visible.
	for _, t := range e.grid {
		if t == nil || !t.Fresh {
			continue
		}
		t.Opacity += e.cfg.Fades.TokenFadeIn
		if t.Opacity >= 1 {
			t.Opacity = 1
			t.Fresh = false
		}
	}

	return falling
}

// occupied reports whether a cell holds a token that is not pending
// removal. Pending cells count as empty for gravity purposes.
func (e *Engine) occupied(col, row int) bool {
	t := e.at(col, row)
	return t != nil && !t.Pending
}
