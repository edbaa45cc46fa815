// Package storage provides SQLite-based persistence for cartridges, editing
// journals and play results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoCartridge is returned when a cartridge is not stored.
var ErrNoCartridge = errors.New("storage: no such cartridge")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// CartridgeInfo describes a stored cartridge without its contents.
type CartridgeInfo struct {
	Collection string
	Game       string
	Size       int
	UpdatedAt  time.Time
}

// JournalEntry is one recorded editing step.
type JournalEntry struct {
	ID        int64
	SessionID uuid.UUID
	Seq       int
	Kind      string // Event type, e.g. "AddMember"
	Name      string // Display name, e.g. "Undo Add Member"
	Direction string // "Record", "Undo" or "Redo"
	CreatedAt time.Time
}

// SessionSummary describes one editing session in the journal.
type SessionSummary struct {
	SessionID uuid.UUID
	Game      string
	Steps     int
	StartedAt time.Time
}

// PlayResult is the outcome of one play through a game.
type PlayResult struct {
	ID         int64
	Collection string
	Game       string
	Status     string // "Won", "Lost" or "Unfinished"
	Frames     int
	Seed       int64
	CreatedAt  time.Time
}

// GameStats contains aggregated play results for a game.
type GameStats struct {
	Game      string
	Plays     int
	Wins      int
	Losses    int
	AvgFrames float64
	LastPlay  time.Time
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
		CREATE TABLE IF NOT EXISTS cartridges (
			collection TEXT NOT NULL,
			game TEXT NOT NULL,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (collection, game)
		);

		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			game TEXT NOT NULL DEFAULT '',
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			direction TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journal_session ON journal(session_id, seq);

		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			collection TEXT NOT NULL,
			game TEXT NOT NULL,
			status TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_game ON plays(collection, game);
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

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveCartridge stores the encoded cartridge, replacing any older version.
func (s *Store) SaveCartridge(collection, game string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO cartridges (collection, game, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(collection, game) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		collection, game, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save cartridge %s/%s: %w", collection, game, err)
	}
	return nil
}

// LoadCartridge returns the encoded cartridge. A missing cartridge gives an
// error wrapping ErrNoCartridge.
func (s *Store) LoadCartridge(collection, game string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM cartridges WHERE collection = ? AND game = ?",
		collection, game,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoCartridge, collection, game)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load cartridge: %w", err)
	}
	return data, nil
}

// DeleteCartridge removes a cartridge. Deleting a missing cartridge is not
// an error.
func (s *Store) DeleteCartridge(collection, game string) error {
	_, err := s.db.Exec("DELETE FROM cartridges WHERE collection = ? AND game = ?", collection, game)
	if err != nil {
		return fmt.Errorf("storage: cannot delete cartridge: %w", err)
	}
	return nil
}

// Cartridges lists the cartridges of a collection ordered by name. An empty
// collection lists every cartridge.
func (s *Store) Cartridges(collection string) ([]CartridgeInfo, error) {
	query := `SELECT collection, game, length(data), updated_at FROM cartridges`
	var args []any
	if collection != "" {
		query += ` WHERE collection = ?`
		args = append(args, collection)
	}
	query += ` ORDER BY collection, game`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cartridges: %w", err)
	}
	defer rows.Close()

	var infos []CartridgeInfo
	for rows.Next() {
		var info CartridgeInfo
		var updatedAt any
		if err := rows.Scan(&info.Collection, &info.Game, &info.Size, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}

// AppendJournal records one editing step of a session.
func (s *Store) AppendJournal(game string, e JournalEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO journal (session_id, game, seq, kind, name, direction)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID.String(), game, e.Seq, e.Kind, e.Name, e.Direction,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot append journal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Journal returns the steps of a session in the order they were recorded.
func (s *Store) Journal(session uuid.UUID) ([]JournalEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, seq, kind, name, direction, created_at
		 FROM journal
		 WHERE session_id = ?
		 ORDER BY seq, id`,
		session.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var sessionID string
		var createdAt any
		if err := rows.Scan(&e.ID, &sessionID, &e.Seq, &e.Kind, &e.Name, &e.Direction, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.SessionID, err = uuid.Parse(sessionID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad session id %q: %w", sessionID, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Sessions lists the most recent editing sessions.
func (s *Store) Sessions(limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT session_id, MAX(game), COUNT(*), MIN(created_at) AS started
		 FROM journal
		 GROUP BY session_id
		 ORDER BY started DESC, MAX(id) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionSummary
	for rows.Next() {
		var ss SessionSummary
		var sessionID string
		var startedAt any
		if err := rows.Scan(&sessionID, &ss.Game, &ss.Steps, &startedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ss.SessionID, err = uuid.Parse(sessionID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad session id %q: %w", sessionID, err)
		}
		ss.StartedAt = parseTime(startedAt)
		sessions = append(sessions, ss)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// RecordPlay stores the outcome of a play through.
// Returns the ID of the inserted record.
func (s *Store) RecordPlay(p PlayResult) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO plays (collection, game, status, frames, seed) VALUES (?, ?, ?, ?, ?)",
		p.Collection, p.Game, p.Status, p.Frames, p.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record play: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentPlays returns the latest play results for a game.
func (s *Store) RecentPlays(collection, game string, limit int) ([]PlayResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, collection, game, status, frames, seed, created_at
		 FROM plays
		 WHERE collection = ? AND game = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		collection, game, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var plays []PlayResult
	for rows.Next() {
		var p PlayResult
		var createdAt any
		if err := rows.Scan(&p.ID, &p.Collection, &p.Game, &p.Status, &p.Frames, &p.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		plays = append(plays, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return plays, nil
}

// GetGameStats retrieves aggregated play results for a game. A game that was
// never played gives zero stats.
func (s *Store) GetGameStats(collection, game string) (*GameStats, error) {
	stats := &GameStats{Game: game}

	var avgFrames sql.NullFloat64
	var lastPlay any
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'Won' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'Lost' THEN 1 ELSE 0 END), 0),
			AVG(frames),
			MAX(created_at)
		 FROM plays
		 WHERE collection = ? AND game = ?`,
		collection, game,
	).Scan(&stats.Plays, &stats.Wins, &stats.Losses, &avgFrames, &lastPlay)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game stats: %w", err)
	}

	if avgFrames.Valid {
		stats.AvgFrames = avgFrames.Float64
	}
	stats.LastPlay = parseTime(lastPlay)
	return stats, nil
}

// ClearPlays deletes all play results for the given game.
func (s *Store) ClearPlays(collection, game string) error {
	_, err := s.db.Exec("DELETE FROM plays WHERE collection = ? AND game = ?", collection, game)
	if err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	return nil
}
