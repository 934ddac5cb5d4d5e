package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Store on top of a pgx connection pool, using a
// key-value table with an expiry column. Expired rows are treated as absent
// and cleaned up lazily on read.
//
// When the database is unreachable at connect time the store runs in
// disconnected mode: every operation degrades to a no-op / absent result
// instead of failing the caller. The engine must keep executing without
// persistence.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the schema exists.
// A connection failure is logged and yields a disconnected store, not an error.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		log.Printf("store: no database URL configured, running without persistence")
		return &Postgres{}, nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Printf("store: database unreachable (%v), running without persistence", err)
		return &Postgres{}, nil
	}

	s := &Postgres{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Connected reports whether the store has a live database connection.
func (s *Postgres) Connected() bool {
	return s.pool != nil
}

// ensureSchema creates the key-value and recent-items tables if missing.
func (s *Postgres) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			expires_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create kv_entries table: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS recent_items (
			list_key TEXT NOT NULL,
			item     TEXT NOT NULL,
			added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (list_key, item)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create recent_items table: %w", err)
	}
	return nil
}

// SetWithExpiry stores value under key with the given TTL. The write is a
// single UPSERT, so readers always see either the old or the new value.
func (s *Postgres) SetWithExpiry(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.pool == nil {
		return nil
	}

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_entries (key, value, expires_at, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = $2, expires_at = $3, updated_at = NOW()`,
		key, value, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Get returns the value for key, treating expired entries as absent.
func (s *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.pool == nil {
		return nil, false, nil
	}

	var value []byte
	var expiresAt *time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT value, expires_at FROM kv_entries WHERE key = $1`,
		key,
	).Scan(&value, &expiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	if expiresAt != nil && time.Now().After(*expiresAt) {
		// Lazy cleanup; a failure here is harmless.
		_, _ = s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
		return nil, false, nil
	}
	return value, true, nil
}

// Delete removes key, reporting whether a row existed.
func (s *Postgres) Delete(ctx context.Context, key string) (bool, error) {
	if s.pool == nil {
		return false, nil
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return tag.RowsAffected() > 0, nil
}

// PushRecent records id at the head of the list at listKey and trims the list
// to maxLen entries. Re-pushing an existing id refreshes its position.
func (s *Postgres) PushRecent(ctx context.Context, listKey, id string, maxLen int) error {
	if s.pool == nil {
		return nil
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO recent_items (list_key, item, added_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (list_key, item) DO UPDATE SET added_at = NOW()`,
		listKey, id,
	)
	if err != nil {
		return fmt.Errorf("failed to push to list %s: %w", listKey, err)
	}

	_, err = s.pool.Exec(ctx,
		`DELETE FROM recent_items
		 WHERE list_key = $1 AND item NOT IN (
			SELECT item FROM recent_items
			WHERE list_key = $1 ORDER BY added_at DESC LIMIT $2
		 )`,
		listKey, maxLen,
	)
	if err != nil {
		return fmt.Errorf("failed to trim list %s: %w", listKey, err)
	}
	return nil
}

// ListRecent returns up to limit items from the list at listKey, newest first.
func (s *Postgres) ListRecent(ctx context.Context, listKey string, limit int) ([]string, error) {
	if s.pool == nil {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT item FROM recent_items WHERE list_key = $1 ORDER BY added_at DESC LIMIT $2`,
		listKey, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", listKey, err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Ping verifies database connectivity.
func (s *Postgres) Ping(ctx context.Context) error {
	if s.pool == nil {
		return fmt.Errorf("store is disconnected")
	}
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
