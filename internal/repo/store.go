package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Hosted store driver.
	_ "github.com/lib/pq"
	// Pure Go SQLite driver (no CGO) for local and test stores.
	_ "modernc.org/sqlite"
)

// Store wraps the database handle and implements the repository interfaces.
type Store struct {
	db *sqlx.DB
}

var _ ItemRepository = (*Store)(nil)
var _ UserRepository = (*Store)(nil)

// Open connects to the data store. driver is "postgres" for the hosted
// store or "sqlite" for a local file; dsn is the driver-specific source.
// SQLite stores get pragmas applied and the schema created on first open.
func Open(driver, dsn string) (*Store, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
		// Single writer.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if err := initSchema(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// DB returns the underlying handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func applyPragmas(db *sqlx.DB) error {
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

// DefaultDBPath resolves the local database file path in priority order:
// 1. WORDKIDS_DB environment variable
// 2. $XDG_DATA_HOME/wordkids/wordkids.db
// 3. ~/.local/share/wordkids/wordkids.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("WORDKIDS_DB"); p != "" {
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

	p := filepath.Join(dataHome, "wordkids", "wordkids.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func initSchema(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			last_active_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS learning_items (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			english_word TEXT NOT NULL,
			portuguese_word TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			pronunciation TEXT NOT NULL DEFAULT '',
			audio_text TEXT NOT NULL DEFAULT '',
			order_index INTEGER NOT NULL DEFAULT 0,
			UNIQUE(category, id)
		)`,
		`CREATE TABLE IF NOT EXISTS user_activity_logs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			activity_type TEXT NOT NULL,
			activity_name TEXT NOT NULL,
			points_earned INTEGER NOT NULL DEFAULT 0,
			metadata TEXT NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS class_categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			order_index INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS lessons (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			title TEXT NOT NULL,
			order_index INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (category_id) REFERENCES class_categories(id)
		)`,
		`CREATE TABLE IF NOT EXISTS lesson_audios (
			id TEXT PRIMARY KEY,
			lesson_id TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'class',
			audio_url TEXT NOT NULL,
			order_index INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (lesson_id) REFERENCES lessons(id)
		)`,
		`CREATE TABLE IF NOT EXISTS class_category_videos (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			video_url TEXT NOT NULL,
			order_index INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (category_id) REFERENCES class_categories(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_learning_items_category
			ON learning_items(category, order_index)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_logs_user
			ON user_activity_logs(user_id, created_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
