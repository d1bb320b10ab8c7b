// Package cache persists generated lessons, card decks, and user progress
// locally so the app works offline and serves repeat loads without hitting
// the remote store or the content providers.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"lingoswipe/internal/database"
)

// Storage is a string key-value store for serialized cache entries
type Storage interface {
	// Get returns the value for key. A missing key is (value="", ok=false),
	// not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Keys returns every stored key with the given prefix
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// SQLiteStorage stores entries in a local SQLite key-value table
type SQLiteStorage struct {
	db *database.DB
}

// NewSQLiteStorage opens storage over the given database, creating the
// backing table if needed
func NewSQLiteStorage(db *database.DB) (*SQLiteStorage, error) {
	const schema = `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_entries WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	// Update-then-insert keeps the upsert portable across dialects
	result, err := s.db.ExecContext(ctx, "UPDATE kv_entries SET value = ? WHERE key = ?", value, key)
	if err != nil {
		return fmt.Errorf("failed to update cache entry %s: %w", key, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, "INSERT INTO kv_entries (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("failed to insert cache entry %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove cache entry %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM kv_entries WHERE key LIKE ?", prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list cache keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Memory is an in-process Storage used by tests and as a fallback when no
// local database path is configured
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory creates an empty in-memory storage
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
