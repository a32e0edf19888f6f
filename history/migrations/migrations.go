// Package migrations keeps the history schema up to date.
//
// Schema changes are the embedded files sql/NN_name.sql, applied in order of
// NN. The applied version is kept in SQLite's user_version header field, so
// the database needs no bookkeeping table.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/subcmd/internal/log"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one schema step.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Name is the file name without extension, e.g. "01_transcripts".
func (m Migration) Name() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

// Load returns the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	return load(sqlFiles)
}

func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		m, err := parse(fsys, name)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s",
				all[i].Version, all[i-1].Name(), all[i].Name())
		}
	}
	return all, nil
}

func parse(fsys fs.FS, file string) (Migration, error) {
	base := strings.TrimSuffix(path.Base(file), ".sql")
	num, desc, ok := strings.Cut(base, "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("migration %s: want NN_description.sql", file)
	}
	version, err := strconv.Atoi(num)
	if err != nil || version < 1 {
		return Migration{}, fmt.Errorf("migration %s: bad version %q", file, num)
	}

	body, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Migration{}, fmt.Errorf("read %s: %w", file, err)
	}
	return Migration{Version: version, Description: desc, SQL: string(body)}, nil
}

// CurrentVersion returns the version of the last applied migration, 0 for a
// fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Pending returns the migrations newer than the database.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}
	return after(all, current), nil
}

func after(all []Migration, version int) []Migration {
	i, _ := slices.BinarySearchFunc(all, version+1, func(m Migration, v int) int {
		return cmp.Compare(m.Version, v)
	})
	return all[i:]
}

// Run applies pending migrations, each in its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name(), err)
		}
		log.Debug("history: applied migration %s", m.Name())
	}
	return nil
}

func apply(db *sql.DB, m Migration) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn("history: rollback %s: %v", m.Name(), rbErr)
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return err
	}
	// PRAGMA takes no bind parameters; Version is an int.
	if _, err = tx.Exec("PRAGMA user_version = " + strconv.Itoa(m.Version)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
