package sqlitedb

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Each collection is a plain document table keyed by record id. Schema
// changes are additive only: new tables may appear, existing record shapes
// are never migrated.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS cycles   (id TEXT PRIMARY KEY, data TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS classes  (id TEXT PRIMARY KEY, data TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS students (id TEXT PRIMARY KEY, data TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS sessions (id TEXT PRIMARY KEY, data TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS documents (id TEXT PRIMARY KEY, data TEXT NOT NULL, content BLOB)`,
}

// Open opens (creating if needed) the single-file database at path.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating database directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	// single-user tool; one writer avoids SQLITE_BUSY churn
	db.SetMaxOpenConns(1)

	if err = ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sql.DB) error {
	var err error
	maxAttempts := 5
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "migrating database")
		}
	}
	return nil
}

// document-table helpers shared by all repositories

func queryAll(db *sql.DB, table string) ([][]byte, error) {
	rows, err := db.Query(`SELECT data FROM ` + table)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", table)
	}
	defer func() { _ = rows.Close() }()

	var docs [][]byte
	for rows.Next() {
		var data []byte
		if err = rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "scanning %s", table)
		}
		docs = append(docs, data)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", table)
	}
	return docs, nil
}

func getRecord(db *sql.DB, table, id string) ([]byte, error) {
	var data []byte
	err := db.QueryRow(`SELECT data FROM `+table+` WHERE id = ?`, id).Scan(&data)
	if err != nil {
		return nil, err // sql.ErrNoRows mapped by callers
	}
	return data, nil
}

func putRecord(db *sql.DB, table, id string, data []byte) error {
	_, err := db.Exec(
		`INSERT INTO `+table+` (id, data) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`, id, data)
	return errors.Wrapf(err, "saving into %s", table)
}

func deleteRecord(db *sql.DB, table, id string) error {
	_, err := db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	return errors.Wrapf(err, "deleting from %s", table)
}
