package library

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "wavesq"
	dbFileName = "library.db"
)

// ErrNotFound is returned by Lookup when no indexed file has the name.
var ErrNotFound = errors.New("track not found")

// Index maps track names to file paths, backed by SQLite.
type Index struct {
	db *sql.DB
}

// DefaultPath returns the index location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens (creating if needed) the index at path. ":memory:" is accepted.
func Open(path string) (*Index, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Every pooled connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Index{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tracks (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			source TEXT NOT NULL,
			size INTEGER NOT NULL,
			mtime INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_name ON tracks(name);
	`)
	return err
}

func (i *Index) Close() error {
	return i.db.Close()
}

// Lookup returns the indexed path for name. When several files share the
// name, the lexically first path wins.
func (i *Index) Lookup(name string) (string, error) {
	var path string
	err := i.db.QueryRow(`
		SELECT path FROM tracks WHERE name = ? ORDER BY path LIMIT 1
	`, name).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// Resolve is Lookup shaped as a resolver. Entries whose file has since
// disappeared are treated as missing.
func (i *Index) Resolve(name string) (string, bool) {
	path, err := i.Lookup(name)
	if err != nil {
		return "", false
	}
	return path, isRegular(path)
}

// Count returns the number of indexed files.
func (i *Index) Count() (int, error) {
	var n int
	err := i.db.QueryRow(`SELECT COUNT(*) FROM tracks`).Scan(&n)
	return n, err
}

// Names returns every distinct indexed name in order.
func (i *Index) Names() ([]string, error) {
	rows, err := i.db.Query(`SELECT DISTINCT name FROM tracks ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (i *Index) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
