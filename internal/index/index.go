// Package index caches derived session metadata in SQLite
// (~/.local/share/watch-claude-think/index.db). Deriving a session's name
// means reading its whole log; the cache makes repeated listings cheap and is
// safe to delete at any time.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection holding the session metadata cache.
type DB struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// Entry is one cached session row. ModTime records the log's modification
// time when the name was derived; a newer log invalidates the entry.
type Entry struct {
	SessionID   string
	Name        string
	ProjectPath string
	ModTime     time.Time
}

// DefaultPath returns the index location under the XDG data directory.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "watch-claude-think", "index.db")
}

// Open opens the index at path, creating parent directories and the schema
// as needed. WAL mode is enabled for concurrent reads.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the index.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn.Close()
}

// Path returns the index file location.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			session_id   TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			project_path TEXT NOT NULL,
			mod_time     INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// Get returns the cached entry for a session. It returns false when there is
// no entry or the cached entry is older than modTime.
func (db *DB) Get(sessionID string, modTime time.Time) (Entry, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var e Entry
	var unix int64
	row := db.conn.QueryRow(
		"SELECT session_id, name, project_path, mod_time FROM sessions WHERE session_id = ?",
		sessionID,
	)
	if err := row.Scan(&e.SessionID, &e.Name, &e.ProjectPath, &unix); err != nil {
		return Entry{}, false
	}
	e.ModTime = time.Unix(unix, 0)
	if e.ModTime.Before(modTime.Truncate(time.Second)) {
		return Entry{}, false
	}
	return e, true
}

// Put stores or replaces a session's cached metadata.
func (db *DB) Put(e Entry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(`
		INSERT INTO sessions (session_id, name, project_path, mod_time)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			name = excluded.name,
			project_path = excluded.project_path,
			mod_time = excluded.mod_time
	`, e.SessionID, e.Name, e.ProjectPath, e.ModTime.Unix())
	if err != nil {
		return fmt.Errorf("store session entry: %w", err)
	}
	return nil
}

// Prune drops entries whose session IDs are not in keep. Old sessions get
// cleaned up by the CLI; their cache rows should not outlive them.
func (db *DB) Prune(keep map[string]bool) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query("SELECT session_id FROM sessions")
	if err != nil {
		return fmt.Errorf("list cached sessions: %w", err)
	}
	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan cached session: %w", err)
		}
		if !keep[id] {
			stale = append(stale, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate cached sessions: %w", err)
	}

	for _, id := range stale {
		if _, err := db.conn.Exec("DELETE FROM sessions WHERE session_id = ?", id); err != nil {
			return fmt.Errorf("delete cached session: %w", err)
		}
	}
	return nil
}
