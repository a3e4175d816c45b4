package engine

import (
	"testing"
)

func newCompleteEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testConfig(), Options{Seed: 11, PreSolved: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestParticlesSpawnLazilyUpToMax(t *testing.T) {
	e := newCompleteEngine(t)
	cfg := testConfig().Particles

	if len(e.Snapshot().Particles) != 0 {
		t.Error("particle system should start empty")
	}

	e.Advance()
	if got := len(e.Snapshot().Particles); got != cfg.SpawnPerTick {
		t.Errorf("after one tick expected %d particles, got %d", cfg.SpawnPerTick, got)
	}

	for i := 0; i < 1000; i++ {
		e.Advance()
	}
	if got := len(e.Snapshot().Particles); got != cfg.Max {
		t.Errorf("particle count should cap at %d, got %d", cfg.Max, got)
	}
}

func TestParticlesStayInViewportBand(t *testing.T) {
	e := newCompleteEngine(t)

	for i := 0; i < 5000; i++ {
		e.Advance()
	}

	for i, p := range e.Snapshot().Particles {
		if p.Y > 102.5 {
			t.Errorf("particle %d escaped below the viewport: y=%v", i, p.Y)
		}
		if p.X < -2.5 || p.X > 102.5 {
			t.Errorf("particle %d escaped horizontally: x=%v", i, p.X)
		}
		if p.Opacity < 0.4 || p.Opacity > 1 {
			t.Errorf("particle %d opacity out of range: %v", i, p.Opacity)
		}
	}
}

func TestParticlesRecycleAtBottom(t *testing.T) {
	e := newCompleteEngine(t)
	e.Advance()

	// Force a flake to the bottom edge and step once: it must wrap back
	// to the top instead of leaving the visible area for good.
	e.particles[0].Y = 103
	e.Advance()

	if y := e.particles[0].Y; y > 0 {
		t.Errorf("recycled particle should restart near the top, y=%v", y)
	}
}

func TestParticlesOnlyMoveWhileComplete(t *testing.T) {
	e := newCompleteEngine(t)
	for i := 0; i < 10; i++ {
		e.Advance()
	}

	before := e.Snapshot()
	e.Advance()
	after := e.Snapshot()

	moved := false
	for i := range after.Particles {
		if after.Particles[i] != before.Particles[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("particles should keep moving while complete")
	}

	for i := range after.Cells {
		if after.Cells[i] != before.Cells[i] {
			t.Fatal("grid must stay frozen while particles animate")
		}
	}
	if after.Points != before.Points || after.Attempts != before.Attempts {
		t.Error("score counters must stay frozen while complete")
	}
}

func TestParticlesAbsentBeforeCompletion(t *testing.T) {
	e := newTestEngine(t, 2)
	for i := 0; i < 100; i++ {
		e.Advance()
	}
	if e.Phase() == PhaseComplete {
		t.Skip("engine completed unexpectedly fast")
	}
	if len(e.Snapshot().Particles) != 0 {
		t.Error("particles must not exist before completion")
	}
}
