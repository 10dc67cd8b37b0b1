package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Store is the durable key-value persistence layer the progress tracker
// writes its JSON blobs through. Load returns (nil, nil) for an absent key.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(keys ...string) error
	Close() error
}

// SQLStore is a Store backed by a single key-value table in SQLite or
// PostgreSQL.
type SQLStore struct {
	db *sqlx.DB
}

// Connect opens the database selected by the DB_TYPE environment variable
// ("sqlite" by default, "postgres" with DATABASE_URL) and initializes the
// schema.
func Connect() (*SQLStore, error) {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch dbType {
	case "sqlite":
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath := filepath.Join(dataDir, "kanastudy.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case "postgres":
		db, err = sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE: %q", dbType)
	}

	store := &SQLStore{db: db}
	if err := store.initializeSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLStore wraps an already-open connection; used by tests that run
// against an in-memory SQLite database.
func NewSQLStore(db *sqlx.DB) (*SQLStore, error) {
	store := &SQLStore{db: db}
	if err := store.initializeSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

// initializeSchema creates the key-value table if it doesn't exist.
func (s *SQLStore) initializeSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create app_state table: %v", err)
	}
	return nil
}

// Load returns the blob stored under key, or (nil, nil) when absent.
func (s *SQLStore) Load(key string) ([]byte, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM app_state WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %v", key, err)
	}
	return []byte(value), nil
}

// Save upserts the blob stored under key.
func (s *SQLStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save %q: %v", key, err)
	}
	return nil
}

// Delete removes the given keys in a single transaction.
func (s *SQLStore) Delete(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %v", err)
	}
	for _, key := range keys {
		if _, err := tx.Exec("DELETE FROM app_state WHERE key = $1", key); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete %q: %v", key, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
