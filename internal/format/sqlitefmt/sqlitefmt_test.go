package sqlitefmt

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func buildFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE orders (id INTEGER, amount REAL)`,
		`INSERT INTO orders VALUES (1, 9.5), (2, 12.0)`,
		`CREATE TABLE customers (id INTEGER, name TEXT)`,
		`INSERT INTO customers VALUES (1, 'Ada')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	return path
}

func TestReadAllTables(t *testing.T) {
	path := buildFixture(t)
	frames, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(frames))
	}
	if frames[0].SuggestedName != "orders" {
		t.Errorf("first table = %q, want orders", frames[0].SuggestedName)
	}
	if frames[0].Frame.Height() != 2 {
		t.Errorf("orders height = %d, want 2", frames[0].Frame.Height())
	}
	if frames[1].Frame.Height() != 1 {
		t.Errorf("customers height = %d, want 1", frames[1].Frame.Height())
	}
}
