// Package testutil holds helpers shared by tests.
package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/subcmd/history/migrations"
)

var dbSeq atomic.Int64

// NewTestDB returns a private in-memory history database at the latest
// schema version. It is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A named shared-cache database keeps every pooled connection on the
	// same data while staying private to this test.
	dsn := fmt.Sprintf("file:history%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(db), "migrate test database")

	all, err := migrations.Load()
	require.NoError(t, err)
	version, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, all[len(all)-1].Version, version, "schema version")

	return db
}
