// Package sqlite provides the embedded SQLite implementation of the
// repository interfaces. It is the default store: the school runs a
// single process with a single session, so an embedded database file is
// all the durability the system needs. The same SQL shape is mirrored by
// the postgres package for hosted deployments.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

// Store owns the SQLite database handle shared by the repositories.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for an in-memory database in tests.
func Open(path string) (*Store, error) {
	// Foreign keys stay declared in the schema but unenforced at
	// runtime: deleting a student or instructor must orphan dependent
	// rows, not block on them.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}

	// One connection at a time. The resource model is single-process,
	// single-session, and a lone connection also keeps ":memory:"
	// databases on one handle instead of one per pooled connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to apply schema: %w", err)
	}

	return s, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the four tables. Creation is idempotent: repeat
// invocations neither fail nor touch existing data.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		phone TEXT NOT NULL,
		progress TEXT NOT NULL,
		payment_status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS instructors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		instructor_type TEXT NOT NULL
	);

	-- student_id/instructor_id are soft references: the schema names the
	-- target tables but deletion never cascades or blocks, and the name
	-- snapshots keep their booking-time values.
	CREATE TABLE IF NOT EXISTS lessons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id),
		student_name TEXT NOT NULL,
		instructor_id INTEGER NOT NULL REFERENCES instructors(id),
		instructor_name TEXT NOT NULL,
		lesson_type TEXT NOT NULL,
		date TEXT NOT NULL,
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS payments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id),
		amount INTEGER NOT NULL,
		payment_date TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// storeErr wraps an underlying database failure with its cause attached.
func storeErr(domain, op string, err error) error {
	return shared.WrapError(domain, op, shared.ErrStore, "storage operation failed", err)
}
