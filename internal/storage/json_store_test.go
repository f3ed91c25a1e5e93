package storage

import (
	"path/filepath"
	"testing"
)

func newJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "streaks.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	store := newJSONStore(t)

	if err := store.Init(); err == nil {
		t.Error("second Init should fail on an existing file")
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	if err := store.Load(); err == nil {
		t.Error("Load should fail when storage was never initialized")
	}
}

func TestJSONStoreSetGetRoundTrip(t *testing.T) {
	store := newJSONStore(t)

	if err := store.Set("userHabits", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Reopen from disk to prove the write persisted.
	reopened := NewJSONStore(store.Path())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	value, ok, err := reopened.Get("userHabits")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Get reported key missing after persisted Set")
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("Get = %q, want stored blob", value)
	}
}

func TestJSONStoreGetMissingKey(t *testing.T) {
	store := newJSONStore(t)

	_, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing key should report ok=false, not an error")
	}
}

func TestJSONStoreSetRejectsInvalidJSON(t *testing.T) {
	store := newJSONStore(t)

	if err := store.Set("userHabits", "{broken"); err == nil {
		t.Error("Set should reject a value that is not valid JSON")
	}
}

func TestJSONStoreRemove(t *testing.T) {
	store := newJSONStore(t)

	if err := store.Set("session", `{"email":"a@b.co"}`); err != nil {
		t.Fatal(err)
	}
	if err := store.Remove("session"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	_, ok, _ := store.Get("session")
	if ok {
		t.Error("key should be gone after Remove")
	}

	// Removing an absent key is a no-op.
	if err := store.Remove("session"); err != nil {
		t.Errorf("Remove of absent key err = %v, want nil", err)
	}
}

func TestJSONStoreNotLoadedGuards(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "streaks.json"))

	if _, _, err := store.Get("k"); err == nil {
		t.Error("Get before Load should fail")
	}
	if err := store.Set("k", "{}"); err == nil {
		t.Error("Set before Load should fail")
	}
	if err := store.Remove("k"); err == nil {
		t.Error("Remove before Load should fail")
	}
}
