// Package postgres provides pgvector-backed storage for scraperbot documents.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
)

// Config holds connection parameters for the vector database.
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// DSN returns the connection string for the configured database.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Database,
	}
	return u.String()
}

// DB represents a single Postgres connection. Each top-level operation opens
// its own DB and closes it when the operation finishes; connections are not
// shared or pooled across operations.
type DB struct {
	conn   *pgx.Conn
	closed bool
}

// Open connects to the database, registers pgvector types on the connection
// and ensures the schema exists. The bootstrap is idempotent and has no side
// effects on an already-migrated database.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := pgxvector.RegisterTypes(ctx, conn); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("registering pgvector types: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.ensureSchema(ctx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return db, nil
}

// Close releases the connection. Safe to call more than once.
func (db *DB) Close(ctx context.Context) error {
	if db.closed {
		return nil
	}
	db.closed = true
	return db.conn.Close(ctx)
}

// ensureSchema creates the scraptable table and its URL uniqueness constraint
// if they are missing.
func (db *DB) ensureSchema(ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("creating vector extension: %w", err)
	}

	if _, err := db.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scraptable (
			id SERIAL PRIMARY KEY,
			url TEXT NOT NULL,
			embedding VECTOR(1536) NOT NULL,
			content TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating scraptable: %w", err)
	}

	// The unique constraint is added separately so that bootstrap remains
	// safe against databases created before the constraint existed.
	var conname string
	err := db.conn.QueryRow(ctx,
		`SELECT conname FROM pg_constraint WHERE conname = 'unique_url'`).Scan(&conname)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, err := db.conn.Exec(ctx,
			`ALTER TABLE scraptable ADD CONSTRAINT unique_url UNIQUE (url)`); err != nil {
			return fmt.Errorf("adding unique_url constraint: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking unique_url constraint: %w", err)
	}

	return nil
}
