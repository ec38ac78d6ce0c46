package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"userAccountStore/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// We use a shared cache memory database so that multiple connections share
// the same DB if needed; name keeps tests isolated from each other. The
// handle is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sqlx.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
