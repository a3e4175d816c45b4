// Package storage provides SQLite-based persistence for puzzle progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Progress is the persistent state of a single puzzle.
type Progress struct {
	PuzzleID string
	Solved   bool
	Attempts int
	Points   int
	SolvedAt time.Time // Zero when unsolved
}

// Session records one finished or abandoned play session.
type Session struct {
	ID        int64
	PuzzleID  string
	Points    int
	Attempts  int
	Revealed  int // Cells revealed when the session ended
	Total     int // Total cells in the puzzle
	Completed bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			puzzle_id TEXT PRIMARY KEY,
			solved INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL DEFAULT 0,
			solved_at DATETIME
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			revealed INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_puzzle_id ON sessions(puzzle_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// MarkSolved flags a puzzle as solved and records the winning counters.
// A puzzle already marked solved keeps its original solved_at timestamp;
// attempts and points are updated only if the new score is higher.
func (s *Store) MarkSolved(puzzleID string, points, attempts int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (puzzle_id, solved, attempts, points, solved_at)
		 VALUES (?, 1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(puzzle_id) DO UPDATE SET
			solved = 1,
			points = MAX(points, excluded.points),
			attempts = excluded.attempts,
			solved_at = COALESCE(solved_at, excluded.solved_at)`,
		puzzleID, attempts, points,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark puzzle solved: %w", err)
	}
	return nil
}

// IsSolved reports whether a puzzle has been solved before.
func (s *Store) IsSolved(puzzleID string) (bool, error) {
	var solved bool
	err := s.db.QueryRow(
		"SELECT solved FROM progress WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&solved)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return solved, nil
}

// PuzzleProgress retrieves the stored progress for one puzzle.
// Returns nil if the puzzle has never been played.
func (s *Store) PuzzleProgress(puzzleID string) (*Progress, error) {
	var p Progress
	var solvedAt any

	err := s.db.QueryRow(
		`SELECT puzzle_id, solved, attempts, points, solved_at
		 FROM progress WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&p.PuzzleID, &p.Solved, &p.Attempts, &p.Points, &solvedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	p.SolvedAt = parseTimestamp(solvedAt)
	return &p, nil
}

// AllProgress retrieves progress for every puzzle that has been played,
// keyed by puzzle ID.
func (s *Store) AllProgress() (map[string]*Progress, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, solved, attempts, points, solved_at FROM progress`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*Progress)
	for rows.Next() {
		var p Progress
		var solvedAt any
		if err := rows.Scan(&p.PuzzleID, &p.Solved, &p.Attempts, &p.Points, &solvedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.SolvedAt = parseTimestamp(solvedAt)
		all[p.PuzzleID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// SaveSession records the outcome of one play session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (puzzle_id, points, attempts, revealed, total, completed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.PuzzleID, sess.Points, sess.Attempts, sess.Revealed, sess.Total, sess.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent play sessions for a puzzle.
func (s *Store) RecentSessions(puzzleID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, points, attempts, revealed, total, completed, created_at
		 FROM sessions
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(
			&sess.ID, &sess.PuzzleID, &sess.Points, &sess.Attempts,
			&sess.Revealed, &sess.Total, &sess.Completed, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTimestamp(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// BestPoints returns the highest points ever scored on a puzzle.
// Returns 0 if the puzzle has never been played.
func (s *Store) BestPoints(puzzleID string) (int, error) {
	var points sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(points) FROM sessions WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&points)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best points: %w", err)
	}

	if !points.Valid {
		return 0, nil
	}
	return int(points.Int64), nil
}

// SolvedCount returns how many puzzles have been solved.
func (s *Store) SolvedCount() (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM progress WHERE solved = 1",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count solved puzzles: %w", err)
	}
	return count, nil
}

// ResetPuzzle deletes progress and session history for one puzzle.
func (s *Store) ResetPuzzle(puzzleID string) error {
	if _, err := s.db.Exec("DELETE FROM progress WHERE puzzle_id = ?", puzzleID); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE puzzle_id = ?", puzzleID); err != nil {
		return fmt.Errorf("storage: cannot reset sessions: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values coming out of
// the sqlite driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
