package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/vscroll/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Backend using a SQLite database. Rows are keyed by
// their list position so At is a single primary-key lookup.
type SQLiteStorage struct {
	db   *sql.DB
	path string
	at   *sql.Stmt
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.at, err = db.Prepare(`
		SELECT id, username, email, avatar, password
		FROM users
		WHERE position = ?
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.at != nil {
		s.at.Close()
	}
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS users (
			position INTEGER PRIMARY KEY NOT NULL,
			id TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL,
			email TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL DEFAULT ''
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (%d);
	`, currentSchemaVersion)
	_, err := s.db.Exec(schema)
	return err
}

// Count returns the number of rows.
func (s *SQLiteStorage) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// At returns the row at index without loading any other row.
func (s *SQLiteStorage) At(index int) (model.User, error) {
	var u model.User
	err := s.at.QueryRow(index).Scan(&u.ID, &u.Username, &u.Email, &u.Avatar, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Load reads the whole dataset in list order.
func (s *SQLiteStorage) Load() (*model.Dataset, error) {
	dataset := model.NewDataset()

	rows, err := s.db.Query(`
		SELECT id, username, email, avatar, password
		FROM users
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Avatar, &u.Password); err != nil {
			return nil, err
		}
		dataset.Users = append(dataset.Users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dataset, nil
}

// Save replaces the stored dataset. Uses a transaction for atomicity.
func (s *SQLiteStorage) Save(dataset *model.Dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM users"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO users (position, id, username, email, avatar, password)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, u := range dataset.Users {
		if _, err := stmt.Exec(i, u.ID, u.Username, u.Email, u.Avatar, u.Password); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	return tx.Commit()
}
