package engine

// markRevealed records that a cell has participated in a cleared match.
// The set is monotonic: cells never un-reveal until completion forces
// everything true.
func (e *Engine) markRevealed(col, row int) {
	idx := row*e.width + col
	if e.revealed[idx] {
		return
	}
	e.revealed[idx] = true
	e.revealedCount++
}

// checkRevealThreshold arms the final reveal once the cleared-cell
// fraction crosses the configured threshold. Arming is one-way; the
// actual phase switch waits for the current removal animation to end.
func (e *Engine) checkRevealThreshold() {
	if e.revealArmed {
		return
	}
	fraction := float64(e.revealedCount) / float64(e.width*e.height)
	if fraction >= e.cfg.Reveal.Threshold {
		e.revealArmed = true
	}
}

// stepReveal advances the final disclosure animation by one tick.
// Token opacity and the grid overlay drain to zero first (independent
// rates, both must finish), then the full image fades in. Reaching full
// fade forces every cell revealed and enters the terminal phase.
func (e *Engine) stepReveal() {
	draining := false

	if e.tokenFade > 0 {
		e.tokenFade -= e.cfg.Fades.TokenFadeOut
		if e.tokenFade < 0 {
			e.tokenFade = 0
		}
		draining = draining || e.tokenFade > 0
	}
	if e.overlayFade > 0 {
		e.overlayFade -= e.cfg.Fades.OverlayFadeOut
		if e.overlayFade < 0 {
			e.overlayFade = 0
		}
		draining = draining || e.overlayFade > 0
	}
	if draining {
		return
	}

	e.colorFade += e.cfg.Fades.ColorFade
	if e.colorFade < 1 {
		return
	}
	e.colorFade = 1

	// Full image must render from here on.
	for i := range e.revealed {
		e.revealed[i] = true
	}
	e.revealedCount = len(e.revealed)
	e.phase = PhaseComplete
	e.particles = make([]Particle, 0, e.cfg.Particles.Max)
}

// RevealedCount returns how many cells have joined a cleared match.
func (e *Engine) RevealedCount() int {
	return e.revealedCount
}
