// Package database opens the pgx-backed connection pool shared by the
// postgres stores.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const pingTimeout = 5 * time.Second

// Pool wraps *sql.DB so main can hand one handle to every store and
// health-check and close it in one place.
type Pool struct {
	db *sql.DB
}

type Option func(*settings)

type settings struct {
	maxOpen      int
	maxIdle      int
	connLifetime time.Duration
}

// WithMaxConns overrides the open/idle connection limits.
func WithMaxConns(open, idle int) Option {
	return func(s *settings) {
		s.maxOpen = open
		s.maxIdle = idle
	}
}

// WithConnLifetime overrides how long a pooled connection may be reused.
func WithConnLifetime(d time.Duration) Option {
	return func(s *settings) {
		s.connLifetime = d
	}
}

// Open connects to Postgres via the pgx stdlib driver and verifies the
// connection with a bounded ping. An empty URL returns a nil pool; callers
// fall back to the in-memory stores.
func Open(url string, opts ...Option) (*Pool, error) {
	if url == "" {
		return nil, nil
	}

	cfg := settings{maxOpen: 25, maxIdle: 5, connLifetime: 5 * time.Minute}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.maxOpen)
	db.SetMaxIdleConns(cfg.maxIdle)
	db.SetConnMaxLifetime(cfg.connLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{db: db}, nil
}

// DB exposes the underlying handle for the store constructors.
func (p *Pool) DB() *sql.DB {
	return p.db
}

// Health reports whether the database is reachable.
func (p *Pool) Health(ctx context.Context) error {
	if p == nil || p.db == nil {
		return fmt.Errorf("database not configured")
	}
	return p.db.PingContext(ctx)
}

// Close releases all pooled connections.
func (p *Pool) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}
