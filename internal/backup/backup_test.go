package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "streaks.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateBackupCopiesJSONStore(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{"version":1,"data":{}}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup path %q should keep the storage extension", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"data":{}}` {
		t.Errorf("backup content = %q, want byte-for-byte copy", data)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail when the storage file does not exist")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{}`)
	mgr := NewManager(storePath)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Errorf("two backups in the same second got the same name %q", first)
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "streaks.json"))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0 before any were created", len(backups))
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{}`)
	mgr := NewManager(storePath)

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}
	// A file without the backup prefix must not be listed (or rotated away).
	if err := os.WriteFile(filepath.Join(mgr.BackupDir(), "notes.txt"), []byte("keep"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want 1 (foreign file ignored)", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{"state":"original"}`)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Mutate the live storage, then restore.
	if err := os.WriteFile(storePath, []byte(`{"state":"changed"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"state":"original"}` {
		t.Errorf("restored content = %q, want original state", data)
	}

	// The pre-restore state must have been backed up as a safety copy.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups after restore, want the safety copy as well", len(backups))
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "streaks.json"))

	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("RestoreBackup should fail for a missing backup file")
	}
}
