package storage

import (
	"path/filepath"
	"testing"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "streaks.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreInitTwiceFails(t *testing.T) {
	store := newSQLiteStore(t)

	if err := store.Init(); err == nil {
		t.Error("second Init should fail on an existing file")
	}
}

func TestSQLiteStoreLoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))

	if err := store.Load(); err == nil {
		t.Error("Load should fail when storage was never initialized")
	}
}

func TestSQLiteStoreSetGetRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	if err := store.Set("userHabits", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("userHabits")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != `[{"id":"1"}]` {
		t.Errorf("Get = (%q, %v), want stored blob", value, ok)
	}
}

func TestSQLiteStoreSetOverwrites(t *testing.T) {
	store := newSQLiteStore(t)

	if err := store.Set("k", `"old"`); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("k", `"new"`); err != nil {
		t.Fatal(err)
	}

	value, _, err := store.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if value != `"new"` {
		t.Errorf("Get = %q, want latest value", value)
	}
}

func TestSQLiteStoreGetMissingKey(t *testing.T) {
	store := newSQLiteStore(t)

	_, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing key should report ok=false, not an error")
	}
}

func TestSQLiteStoreRemove(t *testing.T) {
	store := newSQLiteStore(t)

	if err := store.Set("session", `{}`); err != nil {
		t.Fatal(err)
	}
	if err := store.Remove("session"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	_, ok, _ := store.Get("session")
	if ok {
		t.Error("key should be gone after Remove")
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "streaks.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("k", `"v"`); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != `"v"` {
		t.Errorf("Get after reopen = (%q, %v), want persisted value", value, ok)
	}
}
