// Package kv is the persisted key-value backing layer for the data store.
// It is the Go counterpart of the browser's local storage: string keys,
// JSON-serialized values, and a contract that read/write failures never
// surface to the caller — a broken backing store degrades the application
// to "nothing persists", it does not crash it.
package kv

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Store is the backing-store contract the data store writes through.
//
// Get unmarshals the value stored under key into dest and reports whether a
// usable value was found. Absent keys, storage failures, and corrupt stored
// JSON all report false. Set and Remove never fail from the caller's point
// of view; implementations log and swallow underlying errors.
type Store interface {
	Get(key string, dest any) bool
	Set(key string, value any)
	Remove(key string)
}

// Memory is an in-process Store used by tests and by servers started without
// a data path. Contents are lost when the process exits.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements Store.
func (m *Memory) Get(key string, dest any) bool {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("kv: discarding corrupt value", "key", key, "error", err)
		return false
	}
	return true
}

// Set implements Store.
func (m *Memory) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("kv: value not serializable, write skipped", "key", key, "error", err)
		return
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

// Remove implements Store.
func (m *Memory) Remove(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}
