// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package kv is the persistence layer: a namespaced, typed key-value
// store over a pluggable byte-level backend. Values are JSON documents;
// time.Time fields round-trip through RFC 3339 back into real timestamps.
//
// Persistence failures are never fatal to callers: reads degrade to a
// miss, writes are logged and swallowed. Business code above this layer
// does not handle storage errors.
package kv

import (
	"encoding/json"
	"log/slog"
	"time"
)

// Namespace prefixes every key so application records never collide with
// unrelated data sharing the same backend.
const Namespace = "sitesmith:"

// Store provides typed access to the backing key-value storage.
type Store struct {
	backend Backend
}

// New creates a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Remove deletes the value at key. Errors are logged, never returned.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(Namespace + key); err != nil {
		slog.Error("kv remove failed", "key", key, "error", err)
	}
}

// Keys returns all stored keys under the namespace, with the namespace
// prefix stripped.
func (s *Store) Keys() []string {
	raw, err := s.backend.Keys(Namespace)
	if err != nil {
		slog.Error("kv keys failed", "error", err)
		return nil
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k[len(Namespace):])
	}
	return keys
}

// Load reads and deserializes the value at key. The second return value
// is false when the key is absent or the stored bytes cannot be decoded;
// decode failures are logged and treated as a miss.
func Load[T any](s *Store, key string) (T, bool) {
	var zero T
	raw, ok, err := s.backend.Get(Namespace + key)
	if err != nil {
		slog.Error("kv load failed", "key", key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Error("kv load: corrupt record", "key", key, "error", err)
		return zero, false
	}
	return value, true
}

// Save serializes value and stores it at key, overwriting any prior
// value. Failures are logged and swallowed.
func Save[T any](s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("kv save: marshal failed", "key", key, "error", err)
		return
	}
	if err := s.backend.Put(Namespace+key, raw); err != nil {
		slog.Error("kv save failed", "key", key, "error", err)
	}
}

// cacheEntry wraps a cached value with its expiry time.
type cacheEntry[T any] struct {
	Value  T         `json:"value"`
	Expiry time.Time `json:"expiry"`
}

// cacheKey namespaces cache entries apart from durable records.
func cacheKey(key string) string {
	return "cache:" + key
}

// CacheGet reads a TTL cache entry. Stale entries are evicted and
// reported as a miss.
func CacheGet[T any](s *Store, key string) (T, bool) {
	var zero T
	entry, ok := Load[cacheEntry[T]](s, cacheKey(key))
	if !ok {
		return zero, false
	}
	if time.Now().After(entry.Expiry) {
		s.Remove(cacheKey(key))
		return zero, false
	}
	return entry.Value, true
}

// CacheSet stores a value as a cache entry expiring after ttlMinutes.
func CacheSet[T any](s *Store, key string, value T, ttlMinutes int) {
	Save(s, cacheKey(key), cacheEntry[T]{
		Value:  value,
		Expiry: time.Now().Add(time.Duration(ttlMinutes) * time.Minute),
	})
}
