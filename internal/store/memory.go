package store

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store used for tests and for runs without a
// configured database. Entries honor the same expiry semantics as Postgres.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	lists   map[string][]string
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero = no expiry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		lists:   make(map[string][]string),
	}
}

// SetWithExpiry stores a copy of value under key.
func (m *Memory) SetWithExpiry(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

// Get returns the value for key, treating expired entries as absent.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		// Re-check under the write lock: a fresh write may have landed since
		// the read lock was dropped, and it must not be deleted.
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && !cur.expiresAt.IsZero() && time.Now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

// Delete removes key, reporting whether it existed.
func (m *Memory) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

// PushRecent prepends id to the list at listKey, deduplicating and trimming.
func (m *Memory) PushRecent(_ context.Context, listKey, id string, maxLen int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[listKey]
	next := make([]string, 0, len(list)+1)
	next = append(next, id)
	for _, existing := range list {
		if existing != id {
			next = append(next, existing)
		}
	}
	if len(next) > maxLen {
		next = next[:maxLen]
	}
	m.lists[listKey] = next
	return nil
}

// ListRecent returns up to limit ids, newest first.
func (m *Memory) ListRecent(_ context.Context, listKey string, limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.lists[listKey]
	if len(list) > limit {
		list = list[:limit]
	}
	return append([]string(nil), list...), nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *Memory) Close() {}
