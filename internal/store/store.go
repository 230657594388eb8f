package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/sirupsen/logrus"
	"github.com/vincentb/aurelie/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and hands out the repository the engine
// consumes. It is the storage collaborator behind the Repo boundary; the
// scheduling and engagement logic never touches it directly.
type Store struct {
	db     *sql.DB
	client *ent.Client
	log    *logrus.Logger
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas and runs auto-migration.
func Open(dsn string, log *logrus.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	if log == nil {
		log = logrus.New()
	}
	return &Store{db: db, client: client, log: log}, nil
}

// Repo returns the repository backed by this store.
func (s *Store) Repo() Repo {
	return &entRepo{client: s.client, log: s.log}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// applyPragmas configures SQLite for single-writer-per-learner use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. AURELIE_DB environment variable
// 2. $XDG_DATA_HOME/aurelie/aurelie.db
// 3. ~/.local/share/aurelie/aurelie.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("AURELIE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "aurelie", "aurelie.db")
	return p, EnsureDir(p)
}

// ConfigDir resolves the directory searched for a config file:
// $XDG_CONFIG_HOME/aurelie, falling back to ~/.config/aurelie.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "aurelie"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
