// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package kv

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Backend is the raw byte-level storage a Store runs on. The production
// backend is the records table in the local SQLite file; tests use the
// in-memory backend.
type Backend interface {
	// Get returns the stored bytes for a key. The second return value is
	// false when the key is absent.
	Get(key string) ([]byte, bool, error)
	// Put stores bytes at a key, overwriting any prior value.
	Put(key string, value []byte) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys returns all stored keys with the given prefix, sorted.
	Keys(prefix string) ([]string, error)
}

// SQLBackend stores records in the local SQLite data file.
type SQLBackend struct {
	db *sql.DB
}

// NewSQLBackend creates a backend over the given database connection.
// The records table must exist (run database.Migrate first).
func NewSQLBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("record get %q: %w", key, err)
	}
	return value, true, nil
}

func (b *SQLBackend) Put(key string, value []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("record put %q: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Delete(key string) error {
	if _, err := b.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("record delete %q: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Keys(prefix string) ([]string, error) {
	rows, err := b.db.Query(`SELECT key FROM records WHERE key LIKE ? ORDER BY key`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("record keys %q: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan record key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// MemBackend is an in-memory Backend for tests and ephemeral runs.
type MemBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemBackend creates an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{data: make(map[string][]byte)}
}

func (b *MemBackend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (b *MemBackend) Put(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	b.data[key] = cp
	return nil
}

func (b *MemBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *MemBackend) Keys(prefix string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var keys []string
	for k := range b.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
