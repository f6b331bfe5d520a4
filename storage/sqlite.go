// SQLite record store, used when no remote records database is configured.
//
// Information Hiding:
// - SQLite connection management hidden behind RecordStore
// - Schema and migration details encapsulated
// - Thread-safe via sql.DB's built-in connection pooling

package storage

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
)

// SqliteStore implements RecordStore on a local SQLite database file.
type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// NewSqliteInMemory creates an in-memory store (useful for testing).
func NewSqliteInMemory() (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			table_name TEXT NOT NULL,
			fields TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_records_table
		ON records(table_name, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Create inserts one record with a generated id, serializing fields as JSON.
func (s *SqliteStore) Create(ctx context.Context, table string, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to serialize fields: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, table_name, fields, created_at) VALUES (?, ?, ?, ?)`,
		id, table, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert record: %w", err)
	}
	return id, nil
}

// Get returns the fields of a stored record.
func (s *SqliteStore) Get(ctx context.Context, id string) (map[string]any, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT fields FROM records WHERE id = ?`, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("failed to deserialize fields: %w", err)
	}
	return fields, nil
}

// CountByTable returns the number of records stored for a table.
func (s *SqliteStore) CountByTable(ctx context.Context, table string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE table_name = ?`, table,
	).Scan(&count)
	return count, err
}

// Verify SqliteStore implements RecordStore
var _ RecordStore = (*SqliteStore)(nil)
