package storage

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// KV is the persistence medium for record collections: a flat string-to-string
// map. GetItem returns an empty string for an absent key. Callers treat every
// failure as "value absent" / "write lost"; in-memory state stays authoritative.
type KV interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
}

// DB is a SQLite-backed KV store
type DB struct {
	*sql.DB
}

// Open opens the database in the app data directory and initializes the schema
func Open() (*DB, error) {
	path, err := dataPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(filepath.Join(path, "levelup.db"))
}

// OpenPath opens the database at an explicit file path
func OpenPath(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// DataDir returns the directory holding the database and log file, creating it
// if needed. LEVELUP_DATA_DIR overrides the XDG default.
func DataDir() (string, error) {
	return dataPath()
}

func dataPath() (string, error) {
	if dir := os.Getenv("LEVELUP_DATA_DIR"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "levelup")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// GetItem retrieves a stored value by key; absent keys yield an empty string
func (db *DB) GetItem(key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM items WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetItem overwrites the stored value for key
func (db *DB) SetItem(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO items (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
