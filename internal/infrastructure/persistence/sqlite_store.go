package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Run is one finished play-through
type Run struct {
	ID        int64
	Seed      int64
	Score     int
	Level     int
	Outcome   string // final state name
	Ticks     uint64
	CreatedAt time.Time
}

// SQLiteStore keeps the save slot and the run history in SQLite
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("persistence: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("persistence: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("persistence: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: migration failed: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS save_slot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			x REAL NOT NULL,
			y REAL NOT NULL,
			score INTEGER NOT NULL,
			health INTEGER NOT NULL,
			extra_lives INTEGER NOT NULL,
			achievements TEXT NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the single save slot
func (s *SQLiteStore) Save(state PlayerState) error {
	if state.Achievements == nil {
		state.Achievements = []string{}
	}
	achievements, err := json.Marshal(state.Achievements)
	if err != nil {
		return fmt.Errorf("persistence: encode achievements: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO save_slot (id, x, y, score, health, extra_lives, achievements, saved_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		state.X, state.Y, state.Score, state.Health, state.ExtraLives, string(achievements),
	)
	if err != nil {
		return fmt.Errorf("persistence: cannot save slot: %w", err)
	}
	return nil
}

// Load reads the save slot
func (s *SQLiteStore) Load() (PlayerState, bool, error) {
	var (
		state        PlayerState
		achievements string
	)
	err := s.db.QueryRow(
		`SELECT x, y, score, health, extra_lives, achievements FROM save_slot WHERE id = 1`,
	).Scan(&state.X, &state.Y, &state.Score, &state.Health, &state.ExtraLives, &achievements)

	if errors.Is(err, sql.ErrNoRows) {
		return PlayerState{}, false, nil
	}
	if err != nil {
		return PlayerState{}, false, fmt.Errorf("persistence: cannot load slot: %w", err)
	}

	if err := json.Unmarshal([]byte(achievements), &state.Achievements); err != nil {
		return PlayerState{}, false, fmt.Errorf("persistence: decode achievements: %w", err)
	}
	return state, true, nil
}

// RecordRun appends a finished run to the history.
// Returns the ID of the inserted record.
func (s *SQLiteStore) RecordRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, score, level, outcome, ticks) VALUES (?, ?, ?, ?, ?)`,
		run.Seed, run.Score, run.Level, run.Outcome, int64(run.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("persistence: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("persistence: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs by score, highest first
func (s *SQLiteStore) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, level, outcome, ticks, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("persistence: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &r.Level, &r.Outcome, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("persistence: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)

		// The driver returns either time.Time or string depending on the column affinity
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("persistence: row iteration error: %w", err)
	}
	return runs, nil
}

var _ Store = (*SQLiteStore)(nil)
