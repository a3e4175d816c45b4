package engine

import (
	"testing"
)

func TestRevealMarksMatchedCells(t *testing.T) {
	cfg := testConfig()
	cfg.Reveal.Threshold = 1.0
	e, err := New(cfg, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	setGrid(e, colors)

	e.Advance()

	snap := e.Snapshot()
	for col := 0; col < 3; col++ {
		if !snap.IsRevealed(col, 0) {
			t.Errorf("cell (%d,0) should be revealed after its match cleared", col)
		}
	}
	if snap.IsRevealed(3, 0) {
		t.Error("unmatched cells must stay hidden")
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	e := newTestEngine(t, 17)

	// Drive the engine with scripted clicks and verify the revealed
	// count never decreases across any tick.
	prev := 0
	click := 0
	for tick := 0; tick < 3000; tick++ {
		if e.Phase() == PhaseActive && e.boardSettled() {
			col := click % 7
			row := (click / 7) % 7
			e.HandleClick(col, row)
			e.HandleClick(col+1, row)
			click++
		}
		e.Advance()

		count := e.RevealedCount()
		if count < prev {
			t.Fatalf("revealed count decreased at tick %d: %d -> %d", tick, prev, count)
		}
		prev = count
		if e.Phase() == PhaseComplete {
			break
		}
	}
}

func TestRevealThresholdArmsAfterRemoval(t *testing.T) {
	cfg := testConfig()
	cfg.Reveal.Threshold = 0.01 // Any cleared match crosses it
	e, err := New(cfg, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	setGrid(e, colors)

	e.Advance()
	if e.Phase() != PhaseRemoving {
		t.Fatalf("setup failed, phase = %v", e.Phase())
	}

	// The reveal takes precedence over the pause once shrinking ends.
	for e.Phase() == PhaseRemoving {
		e.Advance()
	}
	if e.Phase() != PhaseRevealing {
		t.Fatalf("phase after removal with threshold crossed = %v, expected revealing", e.Phase())
	}
}

func TestRevealDrainsBeforeColorFade(t *testing.T) {
	cfg := testConfig()
	cfg.Reveal.Threshold = 0.01
	e, err := New(cfg, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	setGrid(e, colors)

	for e.Phase() != PhaseRevealing {
		e.Advance()
	}

	sawDraining := false
	for e.Phase() == PhaseRevealing {
		e.Advance()
		snap := e.Snapshot()
		if snap.TokenFade > 0 || snap.OverlayFade > 0 {
			sawDraining = true
			if snap.ColorFade != 0 {
				t.Fatal("color fade must wait until token and overlay fades reach zero")
			}
		}
	}
	if !sawDraining {
		t.Error("reveal should drain token and overlay opacity first")
	}

	snap := e.Snapshot()
	if snap.Phase != PhaseComplete {
		t.Fatalf("reveal should end in complete, got %v", snap.Phase)
	}
	if snap.ColorFade != 1 {
		t.Errorf("color fade should finish at 1, got %v", snap.ColorFade)
	}
	if snap.RevealedCount != snap.TotalCells {
		t.Errorf("completion must force all cells revealed, got %d/%d",
			snap.RevealedCount, snap.TotalCells)
	}
}

func TestRevealFadesAreMonotonic(t *testing.T) {
	cfg := testConfig()
	cfg.Reveal.Threshold = 0.01
	e, err := New(cfg, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	colors := checkerboard()
	colors[0][0], colors[0][1], colors[0][2] = 0, 0, 0
	setGrid(e, colors)

	prevToken, prevOverlay, prevColor := 1.0, 1.0, 0.0
	for tick := 0; tick < 2000 && e.Phase() != PhaseComplete; tick++ {
		e.Advance()
		snap := e.Snapshot()
		if snap.TokenFade > prevToken {
			t.Fatal("token fade-out must be monotonic")
		}
		if snap.OverlayFade > prevOverlay {
			t.Fatal("overlay fade-out must be monotonic")
		}
		if snap.ColorFade < prevColor {
			t.Fatal("color fade must be monotonic")
		}
		prevToken, prevOverlay, prevColor = snap.TokenFade, snap.OverlayFade, snap.ColorFade
	}

	if e.Phase() != PhaseComplete {
		t.Fatal("reveal never completed")
	}
}

func TestRevealFractionSnapshot(t *testing.T) {
	e := newTestEngine(t, 1)
	snap := e.Snapshot()
	if snap.RevealFraction() != 0 {
		t.Errorf("fresh puzzle reveal fraction = %v, expected 0", snap.RevealFraction())
	}

	e.markRevealed(0, 0)
	e.markRevealed(0, 0) // Marking twice counts once
	e.markRevealed(1, 0)
	snap = e.Snapshot()
	want := 2.0 / 64.0
	if snap.RevealFraction() != want {
		t.Errorf("reveal fraction = %v, expected %v", snap.RevealFraction(), want)
	}
}
