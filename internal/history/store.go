// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists classification and transcription runs in a
// local SQLite database so past results can be reviewed and exported.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/report-engine/pkg/types"
)

const dbFile = "report-engine.db"

// timeLayout is RFC 3339 with fixed-width nanoseconds so stored
// timestamps sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run kinds stored in the log.
const (
	KindTag      = "tag"
	KindReadings = "readings"
)

// Entry is one recorded run.
type Entry struct {
	ID        string          `json:"id" yaml:"id"`
	Kind      string          `json:"kind" yaml:"kind"`
	Input     string          `json:"input" yaml:"input"`
	Result    json.RawMessage `json:"result" yaml:"result"`
	Trace     []types.Step    `json:"trace,omitempty" yaml:"trace,omitempty"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

// Store manages the run history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database under cfg.DataDir, creating
// the schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "history"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			input TEXT NOT NULL,
			result TEXT NOT NULL,
			trace TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run and returns its generated ID. The result is
// stored as JSON; the trace is stored alongside it for later review.
func (s *Store) Record(ctx context.Context, kind, input string, result any, steps []types.Step) (string, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	traceJSON, err := json.Marshal(steps)
	if err != nil {
		return "", fmt.Errorf("marshaling trace: %w", err)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(timeLayout)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, kind, input, result, trace, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, kind, input, string(resultJSON), string(traceJSON), createdAt)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// Recent returns the most recent runs, newest first. An empty kind
// returns runs of every kind; limit <= 0 uses the store default.
func (s *Store) Recent(ctx context.Context, kind string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, kind, input, result, trace, created_at FROM runs`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			result    string
			traceJSON sql.NullString
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.Input, &result, &traceJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		e.Result = json.RawMessage(result)
		if traceJSON.Valid && traceJSON.String != "" {
			if err := json.Unmarshal([]byte(traceJSON.String), &e.Trace); err != nil {
				return nil, fmt.Errorf("decoding trace for run %s: %w", e.ID, err)
			}
		}
		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp for run %s: %w", e.ID, err)
		}
		e.CreatedAt = t

		entries = append(entries, e)
	}
	return entries, rows.Err()
}
