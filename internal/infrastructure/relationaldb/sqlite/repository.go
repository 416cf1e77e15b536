// Package sqlite provides a SQLite implementation of the ports.Repository interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/jackut/internal/infrastructure/config"
)

// Membership roles stored in the memberships table.
const (
	roleMember = "member"
	roleOwner  = "owner"
)

// Repository implements ports.Repository using SQLite. Every Save call
// replaces the stored collection inside one transaction.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.StorageConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Registered accounts
	CREATE TABLE IF NOT EXISTS users (
		login TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		position INTEGER NOT NULL
	);

	-- Free-text profile attributes
	CREATE TABLE IF NOT EXISTS profile_attributes (
		login TEXT NOT NULL REFERENCES users(login) ON DELETE CASCADE,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (login, key)
	);

	-- Relation sets held by a user (friend, pending, enemy, crush, idol, fan)
	CREATE TABLE IF NOT EXISTS user_relations (
		login TEXT NOT NULL REFERENCES users(login) ON DELETE CASCADE,
		type TEXT NOT NULL,
		target TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (login, type, target)
	);
	CREATE INDEX IF NOT EXISTS idx_user_relations_target ON user_relations(target);

	-- Community references held by a user
	CREATE TABLE IF NOT EXISTS memberships (
		login TEXT NOT NULL REFERENCES users(login) ON DELETE CASCADE,
		community TEXT NOT NULL,
		role TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (login, community, role)
	);

	-- Unread direct notes, in queue order per recipient
	CREATE TABLE IF NOT EXISTS notes (
		recipient TEXT NOT NULL REFERENCES users(login) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		sender TEXT NOT NULL,
		text TEXT NOT NULL,
		system INTEGER NOT NULL DEFAULT 0,
		sent_at TIMESTAMP NOT NULL,
		PRIMARY KEY (recipient, position)
	);

	-- Unread community broadcasts, in queue order per recipient
	CREATE TABLE IF NOT EXISTS broadcasts (
		recipient TEXT NOT NULL REFERENCES users(login) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		sender TEXT NOT NULL,
		community TEXT NOT NULL,
		text TEXT NOT NULL,
		sent_at TIMESTAMP NOT NULL,
		PRIMARY KEY (recipient, position)
	);

	-- Communities
	CREATE TABLE IF NOT EXISTS communities (
		name TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		owner TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS community_members (
		community TEXT NOT NULL REFERENCES communities(name) ON DELETE CASCADE,
		login TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (community, login)
	);

	-- Active sessions
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		login TEXT NOT NULL,
		opened_at TIMESTAMP NOT NULL,
		position INTEGER NOT NULL
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// inTx runs fn inside a transaction, committing on success.
func (r *Repository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
