package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Resolution is one recorded installation-path resolution outcome.
type Resolution struct {
	ID        int64
	Timestamp int64 // unix seconds
	OS        string
	Source    string
	Path      string
	Valid     bool
	Error     string
	ToolCount int
	Duration  int64 // milliseconds
}

// DB stores resolution history in a local sqlite database.
type DB struct {
	conn *sql.DB
}

// DefaultPath returns the history database location, creating its
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "share", "arduinoenv")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens (and migrates) the database at path. An empty path uses
// DefaultPath.
func Open(path string) (*DB, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := migrateUp(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return &DB{conn: conn}, nil
}

func migrateUp(conn *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// RecordResolution appends one resolution outcome.
func (d *DB) RecordResolution(ctx context.Context, r Resolution) error {
	_, err := d.conn.ExecContext(ctx,
		`INSERT INTO resolutions (timestamp, os, source, path, valid, error, tool_count, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Timestamp, r.OS, r.Source, r.Path, r.Valid, r.Error, r.ToolCount, r.Duration)
	return err
}

// ListResolutions returns the most recent resolutions, newest first.
func (d *DB) ListResolutions(ctx context.Context, limit int) ([]Resolution, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.conn.QueryContext(ctx,
		`SELECT id, timestamp, os, source, path, valid, error, tool_count, duration_ms
		 FROM resolutions ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resolution
	for rows.Next() {
		var r Resolution
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.OS, &r.Source, &r.Path,
			&r.Valid, &r.Error, &r.ToolCount, &r.Duration); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
