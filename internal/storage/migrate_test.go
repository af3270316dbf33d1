package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}
	applied, err := AppliedMigrations(db)
	if err != nil {
		t.Fatalf("applied migrations: %v", err)
	}
	if len(applied) != 1 || applied[0] != "0001_kv" {
		t.Fatalf("expected [0001_kv] recorded once, got %v", applied)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	applied, err = AppliedMigrations(db)
	if err != nil {
		t.Fatalf("applied migrations after down: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("expected no migrations after down, got %v", applied)
	}
	var tables int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&tables); err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if tables != 0 {
		t.Fatal("expected kv table dropped")
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	kv, err := NewSQLiteKV(db)
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	if err := kv.Set(t.Context(), "dayboard.state", `{"version":1}`); err != nil {
		t.Fatalf("set after roundtrip failed: %v", err)
	}
	got, err := kv.Get(t.Context(), "dayboard.state")
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got != `{"version":1}` {
		t.Fatalf("unexpected value after roundtrip: %q", got)
	}
}
