package kv

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var _ Store = (*SQLStore)(nil)

type SQLStore struct {
	DB *sql.DB
}

// OpenSQLStore connects to a libsql database (local sqld or Turso).
func OpenSQLStore(url string) (*SQLStore, error) {
	if url == "" {
		return nil, fmt.Errorf("libsql backend needs a database url")
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", url, err)
	}

	st, err := NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// NewSQLStore wraps an open database and makes sure the kv table exists.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}
	return &SQLStore{DB: db}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        );
    `)
	return err
}

func (s *SQLStore) Get(key string) (string, error) {
	var value string
	err := s.DB.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.DB.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(key string) error {
	if _, err := s.DB.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.DB.Close()
}
