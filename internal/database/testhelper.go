package database

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/enttest"
	_ "github.com/Prachet0806/iam-access-certification-engine/internal/ent/runtime"
	_ "github.com/mattn/go-sqlite3"
)

// OpenTest opens a throwaway SQLite-backed Ent client in t.TempDir(), runs
// migrations, stamps the revision marker, and registers cleanup.
func OpenTest(t *testing.T) *ent.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_fk=1", filepath.Join(t.TempDir(), "governor.sqlite"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		_ = client.Close()
	})

	if err := stampRevision(t.Context(), client); err != nil {
		t.Fatalf("stamp revision: %v", err)
	}
	return client
}
