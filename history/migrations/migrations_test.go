package migrations

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "01_transcripts", all[0].Name())
	require.Contains(t, all[0].SQL, "CREATE TABLE")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{"no description", fstest.MapFS{"sql/01.sql": {Data: []byte("SELECT 1;")}}},
		{"bad version", fstest.MapFS{"sql/xx_things.sql": {Data: []byte("SELECT 1;")}}},
		{"zero version", fstest.MapFS{"sql/00_things.sql": {Data: []byte("SELECT 1;")}}},
		{"duplicate", fstest.MapFS{
			"sql/01_a.sql": {Data: []byte("SELECT 1;")},
			"sql/1_b.sql":  {Data: []byte("SELECT 1;")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.files)
			require.Error(t, err)
		})
	}
}

func TestLoad_SortsNumerically(t *testing.T) {
	all, err := load(fstest.MapFS{
		"sql/10_late.sql": {Data: []byte("SELECT 10;")},
		"sql/2_early.sql": {Data: []byte("SELECT 2;")},
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 10}, []int{all[0].Version, all[1].Version})
	require.Equal(t, []Migration{all[1]}, after(all, 2))
	require.Empty(t, after(all, 10))
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, Run(db))
	v1, err := CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, Run(db))
	v2, err := CurrentVersion(db)
	require.NoError(t, err)

	all, _ := Load()
	require.Equal(t, all[len(all)-1].Version, v1)
	require.Equal(t, v1, v2)
}

func TestPending(t *testing.T) {
	db := openMemory(t)
	all, err := Load()
	require.NoError(t, err)

	pending, err := Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, Run(db))
	pending, err = Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestApply_RollsBackFailure(t *testing.T) {
	db := openMemory(t)

	err := apply(db, Migration{Version: 7, Description: "broken", SQL: "CREATE TABLE ok (x); NOT SQL"})
	require.Error(t, err)

	v, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestSchemaCreated(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Run(db))

	objects := []struct{ kind, name string }{
		{"table", "transcripts"},
		{"index", "idx_transcripts_command_created"},
	}
	for _, o := range objects {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type=? AND name=?", o.kind, o.name,
		).Scan(&name)
		require.NoError(t, err, "%s %s", o.kind, o.name)
	}
}
