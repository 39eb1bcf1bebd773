package sqlstore

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_RequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestCreateTables(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	created, err := s.CreateTables(ctx)
	if err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	want := []string{"contexts", "folders", "mailboxes", "messages"}
	if !reflect.DeepEqual(created, want) {
		t.Errorf("CreateTables = %v, want %v", created, want)
	}

	again, err := s.CreateTables(ctx)
	if err != nil {
		t.Fatalf("second CreateTables: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second CreateTables = %v, want none", again)
	}
}

func TestCreateTables_FailedMigrationRollsBack(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	if _, err := s.CreateTables(ctx); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	broken := append(append([]migration{}, migrations...), migration{
		version: 2,
		tables:  []string{"extras"},
		sql: `
CREATE TABLE extras (id INTEGER PRIMARY KEY);
INSERT INTO no_such_table (x) VALUES (1);
INSERT INTO schema_version (version) VALUES (2);
`,
	})
	if _, err := s.migrate(ctx, broken); err == nil {
		t.Fatal("expected migration error")
	}

	var tables int
	if err := s.db.GetContext(ctx, &tables,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='extras'"); err != nil {
		t.Fatal(err)
	}
	if tables != 0 {
		t.Error("table from failed migration was kept")
	}
	version, err := s.schemaVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vm.db")
	ctx := context.Background()

	s, err := Open(ctx, dsn, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateTables(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Contexts().Save(ctx, s.Contexts().Create("domain.com")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(ctx, dsn, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	c, err := s.Contexts().Get(ctx, "domain.com")
	if err != nil {
		t.Fatal(err)
	}
	if c == nil || c.ID != 1 {
		t.Errorf("reopened context = %+v, want ID 1", c)
	}
}

func TestStore_UniqueDomain(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	if _, err := s.CreateTables(ctx); err != nil {
		t.Fatal(err)
	}

	if err := s.Contexts().Save(ctx, s.Contexts().Create("domain.com")); err != nil {
		t.Fatal(err)
	}
	if err := s.Contexts().Save(ctx, s.Contexts().Create("domain.com")); err == nil {
		t.Error("expected unique constraint error")
	}
}
