package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// PageCache persists fetched page bodies so re-runs against the same input
// table don't hammer the site. Entries older than TTL count as misses.
type PageCache struct {
	db      *sql.DB
	ttl     time.Duration
	maxBody int
}

const defaultMaxBody = 4 << 20 // 4MB per page is generous for profile pages

func NewPageCache(d *DB, ttl time.Duration) (*PageCache, error) {
	c := &PageCache{db: d.Pool, ttl: ttl, maxBody: defaultMaxBody}
	_, err := c.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
  key TEXT PRIMARY KEY,
  url TEXT NOT NULL,
  body BLOB NOT NULL,
  fetched_at TEXT NOT NULL
);`)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func PageKey(u string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(u)))
	return hex.EncodeToString(h[:])
}

func (c *PageCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	var fetchedAt string
	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM pages WHERE key = ?;`, PageKey(url),
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || time.Since(t) > c.ttl {
		return nil, false, nil // stale; fetcher will overwrite it
	}
	return body, true, nil
}

func (c *PageCache) Put(ctx context.Context, url string, body []byte) error {
	if len(body) == 0 || len(body) > c.maxBody {
		return nil // protect the DB, same as skipping a miss
	}
	_, err := c.db.ExecContext(ctx, `
INSERT OR REPLACE INTO pages(key, url, body, fetched_at)
VALUES(?,?,?,?);`,
		PageKey(url),
		strings.TrimSpace(url),
		body,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
