// Package store handles SQLite persistence of page views.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/folio/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so text comparison in SQL matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for visit data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY,
			page TEXT NOT NULL,
			visited_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits(visited_at);`,
		`CREATE INDEX IF NOT EXISTS idx_visits_page ON visits(page);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordVisit stores one view of page.
func (s *Store) RecordVisit(ctx context.Context, page model.PageID, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (page, visited_at) VALUES (?, ?)`,
		page.Slug(),
		at.UTC().Format(timeLayout),
	)
	return err
}

// VisitCounts returns per-page view counts in sidebar order. Pages without
// views are included with a zero count. A nil since counts everything.
func (s *Store) VisitCounts(ctx context.Context, since *time.Time) ([]model.PageVisits, error) {
	query := `SELECT page, COUNT(*) AS views, MAX(visited_at) AS last_visited
		FROM visits
		WHERE (? = '' OR visited_at >= ?)
		GROUP BY page`
	sinceArg := ""
	if since != nil {
		sinceArg = since.UTC().Format(timeLayout)
	}
	rows, err := s.db.QueryContext(ctx, query, sinceArg, sinceArg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	bySlug := map[string]model.PageVisits{}
	for rows.Next() {
		var slug, last string
		var count int
		if err := rows.Scan(&slug, &count, &last); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, last)
		if err != nil {
			return nil, err
		}
		bySlug[slug] = model.PageVisits{Count: count, LastVisited: parsed}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]model.PageVisits, 0, len(model.Pages))
	for _, p := range model.Pages {
		v := bySlug[p.Slug()]
		v.Page = p
		result = append(result, v)
	}
	return result, nil
}

// Prune deletes visits recorded before cutoff and returns how many were removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM visits WHERE visited_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
