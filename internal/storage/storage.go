// Package storage is the durable key-value layer under the editor. Values
// are JSON-encoded; the article-facing wrapper in this package owns the
// three article keys exclusively, so no other component can produce torn
// reads against them. There is no multi-writer coordination: two processes
// writing the same namespace are last-write-wins.
package storage

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"sync"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Store.Load when the key is absent.
var ErrNotFound = stderrors.New("key not found")

// Store is a namespaced JSON key-value store.
type Store interface {
	Load(ns, key string, into any) error
	Save(ns, key string, v any) error
	Delete(ns, key string) error
	Close() error
}

// SQLiteStore persists to a local SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		ns    TEXT NOT NULL,
		key   TEXT NOT NULL,
		value BLOB NOT NULL,
		PRIMARY KEY (ns, key)
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ns, key string, into any) error {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE ns = ? AND key = ?", ns, key).Scan(&value)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "failed to load %s/%s", ns, key)
	}
	if err := json.Unmarshal(value, into); err != nil {
		return errors.Wrapf(err, "failed to decode %s/%s", ns, key)
	}
	return nil
}

func (s *SQLiteStore) Save(ns, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s/%s", ns, key)
	}
	_, err = s.db.Exec(
		"INSERT INTO kv (ns, key, value) VALUES (?, ?, ?) ON CONFLICT (ns, key) DO UPDATE SET value = excluded.value",
		ns, key, value,
	)
	return errors.Wrapf(err, "failed to save %s/%s", ns, key)
}

func (s *SQLiteStore) Delete(ns, key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE ns = ? AND key = ?", ns, key)
	return errors.Wrapf(err, "failed to delete %s/%s", ns, key)
}

func (s *SQLiteStore) Close() error {
	return errors.Wrap(s.db.Close(), "failed to close database")
}

// MemoryStore keeps values in process memory. Used in tests and as a
// fallback when no data directory is available.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[[2]string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[[2]string][]byte{}}
}

func (s *MemoryStore) Load(ns, key string, into any) error {
	s.mu.RLock()
	value, ok := s.data[[2]string{ns, key}]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return errors.Wrapf(json.Unmarshal(value, into), "failed to decode %s/%s", ns, key)
}

func (s *MemoryStore) Save(ns, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s/%s", ns, key)
	}
	s.mu.Lock()
	s.data[[2]string{ns, key}] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ns, key string) error {
	s.mu.Lock()
	delete(s.data, [2]string{ns, key})
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
