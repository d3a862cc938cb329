// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists per-file conversion outcomes in a SQLite
// database, one row per processed file, grouped into runs.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/jonathan-convert/pkg/types"
)

// Store manages the conversion catalog database.
type Store struct {
	db    *sql.DB
	runID int64
}

// Open opens or creates the catalog database at path, creating the schema
// and a new run row. The parent directory is created if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := s.beginRun(); err != nil {
		db.Close()
		return nil, fmt.Errorf("starting run: %w", err)
	}
	return s, nil
}

// Close marks the run finished and releases the database connection.
func (s *Store) Close() error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), s.runID,
	)
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			finished_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			job TEXT NOT NULL,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_files_run_id ON files(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (s *Store) beginRun() error {
	res, err := s.db.Exec(
		`INSERT INTO runs (started_at) VALUES (?)`,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	s.runID, err = res.LastInsertId()
	return err
}

// Record inserts one row per outcome for the named job into the current run.
func (s *Store) Record(job string, outcomes []types.Outcome) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO files (run_id, job, input_path, output_path, status, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		var errText sql.NullString
		if o.Err != nil {
			errText = sql.NullString{String: o.Err.Error(), Valid: true}
		}
		if _, err := stmt.Exec(s.runID, job, o.Pair.Input, o.Pair.Output, string(o.Status()), errText); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting outcome for %s: %w", o.Pair.Input, err)
		}
	}
	return tx.Commit()
}
