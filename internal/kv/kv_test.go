package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}
	if err := s.Set("better_handy_diet_swaps_v1", []byte(`{"Pranzo":{}}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("better_handy_diet_swaps_v1", []byte(`{}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err := s.Get("better_handy_diet_swaps_v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("Get = %q, want %q", got, "{}")
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemory_ZeroValue(t *testing.T) {
	var m Memory
	exerciseStore(t, &m)
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	exerciseStore(t, fs)

	if _, err := os.Stat(filepath.Join(dir, "better_handy_diet_swaps_v1.json")); err != nil {
		t.Fatalf("expected key file: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	for _, key := range []string{"", "../escape", "a/b", ".."} {
		if err := fs.Set(key, []byte("x")); err == nil {
			t.Fatalf("Set(%q) succeeded, want error", key)
		}
	}
}

func TestNewFileStore_EmptyPath(t *testing.T) {
	if _, err := NewFileStore("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	exerciseStore(t, db)
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	got, err := reopened.Get("better_handy_diet_swaps_v1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("Get after reopen = %q, want %q", got, "{}")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"", "file", "SQLite", "memory"} {
		s, closeFn, err := Open(backend, dir)
		if err != nil {
			t.Fatalf("Open(%q): %v", backend, err)
		}
		exerciseStore(t, s)
		if err := closeFn(); err != nil {
			t.Fatalf("close %q: %v", backend, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultSQLiteFile)); err != nil {
		t.Fatalf("sqlite backend should create %s in dir: %v", DefaultSQLiteFile, err)
	}

	if _, _, err := Open("redis", dir); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
