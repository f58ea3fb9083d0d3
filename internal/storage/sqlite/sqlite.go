// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads all three slots.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Dataset, error) {
	ds := &models.Dataset{}
	for _, slot := range storage.AllSlots {
		var data string
		err := s.db.QueryRowContext(ctx,
			"SELECT data FROM slots WHERE name = ?",
			string(slot),
		).Scan(&data)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read slot %s: %w", slot, err)
		}
		if err := storage.DecodeSlot(ds, slot, []byte(data)); err != nil {
			return nil, err
		}
	}

	loaded := ds.Clone()
	return &loaded, nil
}

// Write replaces the given slots inside a single transaction.
func (s *SQLiteStore) Write(ctx context.Context, ds *models.Dataset, slots ...storage.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, slot := range slots {
		data, err := storage.EncodeSlot(ds, slot)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
			string(slot), string(data), now,
		)
		if err != nil {
			return fmt.Errorf("failed to write slot %s: %w", slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RawSlot returns the stored JSON text of a slot, or "" when it was never written.
func (s *SQLiteStore) RawSlot(ctx context.Context, slot storage.Slot) (string, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM slots WHERE name = ?", string(slot)).Scan(&data)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read slot %s: %w", slot, err)
	}
	return data, nil
}
