package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardbook/cardbook-backend/internal/domain"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    data       BLOB NOT NULL,
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);
`

// SnapshotRepository implements domain.SnapshotRepository on top of a local
// SQLite database holding one serialized blob per namespace key.
type SnapshotRepository struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(path string) (*SnapshotRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SnapshotRepository{db: db}, nil
}

// Load returns the snapshot stored under key, or domain.ErrSnapshotNotFound.
func (r *SnapshotRepository) Load(key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow("SELECT data FROM snapshots WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save replaces the snapshot stored under key.
func (r *SnapshotRepository) Save(key string, data []byte) error {
	_, err := r.db.Exec(`INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data,
		updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`, key, data)
	return err
}

// Close closes the underlying database.
func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}
