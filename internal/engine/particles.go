package engine

// Particle is a decorative snowflake shown after completion. Positions
// are percentages of the viewport so the platform can scale them to any
// screen size.
type Particle struct {
	X, Y    float64 // Viewport position, 0..100
	Size    float64 // Relative size, 0.5..1.5
	Fall    float64 // Vertical speed, percent per tick
	Drift   float64 // Horizontal speed, percent per tick
	Opacity float64
}

// updateParticles runs the post-completion snowfall: spawn lazily up to
// the configured maximum, drift everything downward, and recycle flakes
// leaving the visible area back to the top.
func (e *Engine) updateParticles() {
	cfg := e.cfg.Particles

	for i := 0; i < cfg.SpawnPerTick && len(e.particles) < cfg.Max; i++ {
		e.particles = append(e.particles, e.newParticle())
	}

	for i := range e.particles {
		p := &e.particles[i]
		p.Y += p.Fall
		p.X += p.Drift

		if p.X < -2 {
			p.X += 104
		} else if p.X > 102 {
			p.X -= 104
		}
		if p.Y > 102 {
			// Recycle: fresh flake at the top, new horizontal track.
			*p = e.newParticle()
			p.Y = -2
		}
	}
}

// newParticle rolls a flake just above the viewport.
func (e *Engine) newParticle() Particle {
	cfg := e.cfg.Particles
	return Particle{
		X:       e.rng.Float64() * 100,
		Y:       -2 + e.rng.Float64()*4,
		Size:    0.5 + e.rng.Float64(),
		Fall:    cfg.MinFall + e.rng.Float64()*(cfg.MaxFall-cfg.MinFall),
		Drift:   (e.rng.Float64()*2 - 1) * cfg.MaxDrift,
		Opacity: 0.4 + e.rng.Float64()*0.6,
	}
}
