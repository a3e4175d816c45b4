package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreMarkSolved(t *testing.T) {
	store := openTestStore(t)

	// Unknown puzzle starts unsolved
	solved, err := store.IsSolved("2026-01-05")
	if err != nil {
		t.Fatalf("IsSolved() failed: %v", err)
	}
	if solved {
		t.Error("Unknown puzzle should not be solved")
	}

	if err := store.MarkSolved("2026-01-05", 640, 23); err != nil {
		t.Fatalf("MarkSolved() failed: %v", err)
	}

	solved, err = store.IsSolved("2026-01-05")
	if err != nil {
		t.Fatalf("IsSolved() failed: %v", err)
	}
	if !solved {
		t.Error("Puzzle should be solved after MarkSolved")
	}

	p, err := store.PuzzleProgress("2026-01-05")
	if err != nil {
		t.Fatalf("PuzzleProgress() failed: %v", err)
	}
	if p == nil {
		t.Fatal("PuzzleProgress() returned nil for a solved puzzle")
	}
	if p.Points != 640 || p.Attempts != 23 {
		t.Errorf("Progress counters = %d points / %d attempts, expected 640/23", p.Points, p.Attempts)
	}
	if p.SolvedAt.IsZero() {
		t.Error("Solved puzzle should carry a solved_at timestamp")
	}
}

func TestStoreMarkSolvedKeepsBestPoints(t *testing.T) {
	store := openTestStore(t)

	store.MarkSolved("2026-01-06", 500, 30)
	store.MarkSolved("2026-01-06", 400, 20)

	p, err := store.PuzzleProgress("2026-01-06")
	if err != nil {
		t.Fatalf("PuzzleProgress() failed: %v", err)
	}
	if p.Points != 500 {
		t.Errorf("Re-solving with fewer points should keep the best, got %d", p.Points)
	}
}

func TestStorePuzzleProgressMissing(t *testing.T) {
	store := openTestStore(t)

	p, err := store.PuzzleProgress("never-played")
	if err != nil {
		t.Fatalf("PuzzleProgress() failed: %v", err)
	}
	if p != nil {
		t.Errorf("Expected nil progress for an unplayed puzzle, got %+v", p)
	}
}

func TestStoreAllProgress(t *testing.T) {
	store := openTestStore(t)

	store.MarkSolved("2026-01-01", 100, 10)
	store.MarkSolved("2026-01-02", 200, 15)

	all, err := store.AllProgress()
	if err != nil {
		t.Fatalf("AllProgress() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 progress rows, got %d", len(all))
	}
	if !all["2026-01-01"].Solved || !all["2026-01-02"].Solved {
		t.Error("Both puzzles should be solved")
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveSession(Session{
			PuzzleID:  "2026-02-14",
			Points:    (i + 1) * 100,
			Attempts:  i + 3,
			Revealed:  i * 10,
			Total:     64,
			Completed: i == 4,
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	store.SaveSession(Session{PuzzleID: "other", Points: 999, Total: 64})

	sessions, err := store.RecentSessions("2026-02-14", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	// Most recent first
	if sessions[0].Points != 500 || !sessions[0].Completed {
		t.Errorf("Most recent session should be the completed 500-point run, got %+v", sessions[0])
	}

	best, err := store.BestPoints("2026-02-14")
	if err != nil {
		t.Fatalf("BestPoints() failed: %v", err)
	}
	if best != 500 {
		t.Errorf("Expected best points 500, got %d", best)
	}
}

func TestStoreBestPointsEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestPoints("never-played")
	if err != nil {
		t.Fatalf("BestPoints() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 best points for an unplayed puzzle, got %d", best)
	}
}

func TestStoreSolvedCount(t *testing.T) {
	store := openTestStore(t)

	count, err := store.SolvedCount()
	if err != nil {
		t.Fatalf("SolvedCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 solved puzzles, got %d", count)
	}

	store.MarkSolved("a", 10, 1)
	store.MarkSolved("b", 20, 2)
	store.MarkSolved("a", 30, 3) // Re-solving does not double count

	count, err = store.SolvedCount()
	if err != nil {
		t.Fatalf("SolvedCount() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 solved puzzles, got %d", count)
	}
}

func TestStoreResetPuzzle(t *testing.T) {
	store := openTestStore(t)

	store.MarkSolved("a", 10, 1)
	store.SaveSession(Session{PuzzleID: "a", Points: 10, Total: 64})
	store.MarkSolved("b", 20, 2)

	if err := store.ResetPuzzle("a"); err != nil {
		t.Fatalf("ResetPuzzle() failed: %v", err)
	}

	solved, _ := store.IsSolved("a")
	if solved {
		t.Error("Reset puzzle should no longer be solved")
	}
	sessions, _ := store.RecentSessions("a", 10)
	if len(sessions) != 0 {
		t.Errorf("Reset puzzle should have no sessions, got %d", len(sessions))
	}

	// Other puzzles untouched
	solved, _ = store.IsSolved("b")
	if !solved {
		t.Error("Resetting one puzzle must not affect others")
	}
}
