package lookup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Cache persists web summaries in SQLite so repeated questions skip the
// network. Entries expire after a TTL; expired rows are overwritten on the
// next Put for the same query.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenCache opens (or creates) the summary cache in dataDir. Pass ":memory:"
// as dataDir for an in-memory cache (used by tests). A ttl of 0 selects 24h.
func OpenCache(dataDir string, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "lookup.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging cache database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS summaries (
		query TEXT PRIMARY KEY,
		summary TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating summaries table: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached summary for a query, or ok=false on a miss or an
// expired entry.
func (c *Cache) Get(query string) (string, bool) {
	var summary string
	var createdAt string
	err := c.db.QueryRow(
		"SELECT summary, created_at FROM summaries WHERE query = ?", query,
	).Scan(&summary, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		return "", false
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil || time.Since(t) > c.ttl {
		return "", false
	}
	return summary, true
}

// Put stores a summary for a query, replacing any previous entry.
func (c *Cache) Put(query, summary string) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO summaries (query, summary, created_at) VALUES (?, ?, ?)",
		query, summary, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("caching summary: %w", err)
	}
	return nil
}
