// Package storage provides SQLite-based persistence for the replay journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a recording ID does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for the replay journal.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Recording is one journaled session as stored on disk.
// Events holds the encoded action log; the replay package owns its format.
type Recording struct {
	ID             int64
	Frontend       string // "terminal", "window" or "ssh"
	Seed           int64
	TickRate       int
	Width          int
	Height         int
	DropIntervalMS int
	PointsPerRow   int
	FinalTick      uint64
	Score          int
	RowsCleared    int
	PiecesLocked   int
	GameOver       bool
	Events         []byte
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			frontend TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			drop_interval_ms INTEGER NOT NULL,
			points_per_row INTEGER NOT NULL,
			final_tick INTEGER NOT NULL,
			score INTEGER NOT NULL,
			rows_cleared INTEGER NOT NULL DEFAULT 0,
			pieces_locked INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			events BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at);
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

// SaveRecording appends a session to the journal and returns its ID.
func (s *Store) SaveRecording(r Recording) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO recordings
		 (frontend, seed, tick_rate, width, height, drop_interval_ms, points_per_row,
		  final_tick, score, rows_cleared, pieces_locked, game_over, events)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Frontend, r.Seed, r.TickRate, r.Width, r.Height, r.DropIntervalMS, r.PointsPerRow,
		int64(r.FinalTick), r.Score, r.RowsCleared, r.PiecesLocked, r.GameOver, r.Events,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const recordingColumns = `id, frontend, seed, tick_rate, width, height, drop_interval_ms, points_per_row,
	final_tick, score, rows_cleared, pieces_locked, game_over, events, created_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecording(row rowScanner) (Recording, error) {
	var r Recording
	var finalTick int64
	var createdAt any
	err := row.Scan(
		&r.ID, &r.Frontend, &r.Seed, &r.TickRate, &r.Width, &r.Height, &r.DropIntervalMS, &r.PointsPerRow,
		&finalTick, &r.Score, &r.RowsCleared, &r.PiecesLocked, &r.GameOver, &r.Events, &createdAt,
	)
	if err != nil {
		return Recording{}, err
	}
	r.FinalTick = uint64(finalTick)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
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

// Recordings lists the most recent recordings, newest first.
func (s *Store) Recordings(limit int) ([]Recording, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+recordingColumns+`
		 FROM recordings
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var out []Recording
	for rows.Next() {
		r, err := scanRecording(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Recording fetches a single recording by ID.
func (s *Store) Recording(id int64) (Recording, error) {
	row := s.db.QueryRow(`SELECT `+recordingColumns+` FROM recordings WHERE id = ?`, id)
	r, err := scanRecording(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Recording{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return Recording{}, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	return r, nil
}

// DeleteRecording removes a recording from the journal.
func (s *Store) DeleteRecording(id int64) error {
	result, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// CountRecordings returns the number of journaled sessions.
func (s *Store) CountRecordings() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM recordings").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count recordings: %w", err)
	}
	return n, nil
}
