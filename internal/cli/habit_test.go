package cli

import (
	"path/filepath"
	"testing"

	"github.com/jmills-dev/streaks/internal/backup"
	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/storage"
)

func newFileContext(t *testing.T) *Context {
	t.Helper()
	kv := storage.NewJSONStore(filepath.Join(t.TempDir(), "streaks.json"))
	if err := kv.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ledger := habits.NewLedger(kv)
	return &Context{
		KV:     kv,
		Store:  habits.NewStore(kv, ledger),
		Ledger: ledger,
	}
}

func TestHabitDeleteTakesBackupFirst(t *testing.T) {
	ctx := newFileContext(t)
	habit, err := ctx.Store.Create(models.HabitDraft{Title: "Stretch", Frequency: models.FrequencyDaily})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Store.Toggle(habit.ID); err != nil {
		t.Fatal(err)
	}

	cmd := &HabitDeleteCmd{Habit: habit.ID, Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := ctx.Store.Get(habit.ID); err == nil {
		t.Error("habit should be gone after delete")
	}

	backups, err := backup.NewManager(ctx.KV.Path()).ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) == 0 {
		t.Error("delete should leave a backup of the pre-delete storage behind")
	}
}
