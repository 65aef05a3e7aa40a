// Package storage provides SQLite-based persistence for high scores and
// finished rounds. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// HighScore is the best result recorded under a key.
type HighScore struct {
	HighestTile    int       `json:"highestTileValue"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
	UpdatedAt      time.Time `json:"-"`
}

// EndReason explains why a round was recorded.
type EndReason string

const (
	EndGameOver EndReason = "game_over"
	EndQuit     EndReason = "quit"
	EndRestart  EndReason = "restart"
)

// Round is one finished game.
type Round struct {
	ID             int64
	RoundID        uuid.UUID
	GameID         string
	Player         string // Empty for local play
	HighestTile    int
	ElapsedSeconds int
	Moves          int
	EndReason      EndReason
	CreatedAt      time.Time
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
		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			highest_tile INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			highest_tile INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, highest_tile DESC, elapsed_secs ASC);
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

// HighScore returns the record stored under key.
// Returns nil and no error if nothing has been recorded yet.
func (s *Store) HighScore(key string) (*HighScore, error) {
	var hs HighScore
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT highest_tile, elapsed_secs, updated_at FROM high_scores WHERE key = ?",
		key,
	).Scan(&hs.HighestTile, &hs.ElapsedSeconds, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	hs.UpdatedAt = parseTime(updatedAt)
	return &hs, nil
}

// SaveHighScore stores hs under key if its tile beats the current record.
// Returns true if the record was replaced.
func (s *Store) SaveHighScore(key string, hs HighScore) (bool, error) {
	res, err := s.db.Exec(
		`INSERT INTO high_scores (key, highest_tile, elapsed_secs, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		     highest_tile = excluded.highest_tile,
		     elapsed_secs = excluded.elapsed_secs,
		     updated_at = excluded.updated_at
		 WHERE excluded.highest_tile > high_scores.highest_tile`,
		key, hs.HighestTile, hs.ElapsedSeconds,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// ClearHighScore removes the record stored under key.
func (s *Store) ClearHighScore(key string) error {
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// SaveRound records a finished round. A zero RoundID is replaced with a
// new random one. Returns the ID of the inserted row.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.RoundID == uuid.Nil {
		r.RoundID = uuid.New()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, game_id, player, highest_tile, elapsed_secs, moves, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID.String(), r.GameID, r.Player, r.HighestTile, r.ElapsedSeconds, r.Moves, string(r.EndReason),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the best N rounds for the given game: highest tile
// first, faster rounds first on ties.
func (s *Store) TopRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, player, highest_tile, elapsed_secs, moves, end_reason, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY highest_tile DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var roundID, reason string
		var createdAt any
		if err := rows.Scan(&r.ID, &roundID, &r.GameID, &r.Player, &r.HighestTile,
			&r.ElapsedSeconds, &r.Moves, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		parsed, err := uuid.Parse(roundID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad round id %q: %w", roundID, err)
		}
		r.RoundID = parsed
		r.EndReason = EndReason(reason)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats contains aggregated statistics for a game.
type Stats struct {
	GameID     string
	Rounds     int
	BestTile   int
	TotalMoves int64
	AvgSeconds float64
	LastPlayed time.Time
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(highest_tile), 0), COALESCE(SUM(moves), 0),
		        COALESCE(AVG(elapsed_secs), 0), MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.BestTile, &stats.TotalMoves, &stats.AvgSeconds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRounds deletes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
