package db

import (
	"fmt"
	"os"
	"path/filepath"

	"moodjournal/pkg/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

func init() {
	// sqlx has no bind type registered for the modernc driver name
	sqlx.BindDriver(sqliteDriver, sqlx.QUESTION)
}

func NewPostgresDB(cfg *config.Config) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logrus.Info("Connected to PostgreSQL")
	return db, nil
}

func NewSQLiteDB(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sqlx.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// a single connection keeps writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logrus.Infof("Opened SQLite database %s", path)
	return db, nil
}

// Open picks the backend named by cfg.StorageBackend. The memory backend has no database.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		return NewPostgresDB(cfg)
	case config.StorageBackendSQLite:
		return NewSQLiteDB(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage backend %q has no database", cfg.StorageBackend)
	}
}
