// Package history stores captured dialog transcripts in SQLite so a session
// can be replayed later by piping it back through "<command> stdin".
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/subcmd/history/migrations"
	"github.com/footprint-tools/subcmd/internal/log"
)

var (
	// ErrNotFound is returned when no transcript matches an id.
	ErrNotFound = errors.New("history: transcript not found")
	// ErrAmbiguous is returned when an id prefix matches several transcripts.
	ErrAmbiguous = errors.New("history: id prefix is ambiguous")
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one saved transcript.
type Entry struct {
	ID         string
	Command    string
	Transcript string
	CreatedAt  time.Time
}

// ShortID is the first eight characters of the id, enough for Get.
func (e Entry) ShortID() string {
	if len(e.ID) < 8 {
		return e.ID
	}
	return e.ID[:8]
}

// Store wraps the history database.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the database at path and runs pending migrations.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configure(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug("history: opened %s", path)
	return &Store{db: db, path: path, now: time.Now}, nil
}

// NewWithDB creates a Store from an existing, migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Path returns the database file, or "" for stores built with NewWithDB.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func configure(db *sql.DB) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// setDBPermissions restricts the database and its WAL/SHM files to the owner.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Save records transcript as produced by command.
func (s *Store) Save(command, transcript string) (Entry, error) {
	e := Entry{
		ID:         uuid.NewString(),
		Command:    command,
		Transcript: transcript,
		CreatedAt:  s.now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO transcripts (id, command, transcript, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Command, e.Transcript, e.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("save transcript: %w", err)
	}

	log.Debug("history: saved %s for %s", e.ShortID(), command)
	return e, nil
}

// Get returns the entry whose id is id or starts with id.
func (s *Store) Get(id string) (Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, ErrNotFound
	}

	rows, err := s.db.Query(
		`SELECT id, command, transcript, created_at FROM transcripts
		 WHERE id = ? OR id LIKE ? ESCAPE '\'
		 ORDER BY id = ? DESC
		 LIMIT 2`,
		id, escapeLike(id)+"%", id,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("get transcript: %w", err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return Entry{}, err
	}

	switch {
	case len(entries) == 0:
		return Entry{}, ErrNotFound
	case entries[0].ID == id, len(entries) == 1:
		return entries[0], nil
	default:
		return Entry{}, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}
}

// Latest returns the most recent entry for command, or for any command when
// command is empty.
func (s *Store) Latest(command string) (Entry, error) {
	entries, err := s.List(command, 1)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNotFound
	}
	return entries[0], nil
}

// List returns entries newest first. An empty command matches every command
// and a limit of 0 or less returns everything.
func (s *Store) List(command string, limit int) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if command != "" {
		clauses = append(clauses, "command = ?")
		args = append(args, command)
	}

	query := `SELECT id, command, transcript, created_at FROM transcripts`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	return scanEntries(rows)
}

// Delete removes the entry with exactly this id.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM transcripts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transcript: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transcript: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created string
		)
		if err := rows.Scan(&e.ID, &e.Command, &e.Transcript, &created); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		t, err := time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read transcripts: %w", err)
	}
	return entries, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
