package habits

import (
	"encoding/json"
	"testing"

	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/storage"
)

func seedLedger(t *testing.T, kv storage.KV, recs []models.CompletionRecord) {
	t.Helper()
	data, err := json.Marshal(recs)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(constants.CompletionsKey, string(data)); err != nil {
		t.Fatal(err)
	}
}

func TestRecordsNormalization(t *testing.T) {
	kv := storage.NewMemStore()
	seedLedger(t, kv, []models.CompletionRecord{
		{HabitID: "h1", Date: "2024-03-15", Completed: true},
		{HabitID: "h1", Date: "2024-03-14", Completed: false},     // stale false record
		{HabitID: "h1", Date: "garbage", Completed: true},         // malformed date
		{HabitID: "h2", Date: "2024-03-15T08:30:00Z", Completed: true}, // time suffix
	})

	ledger := NewLedger(kv)
	recs := ledger.Records()

	if len(recs) != 2 {
		t.Fatalf("Records() returned %d records, want 2", len(recs))
	}
	for _, r := range recs {
		if !r.Completed {
			t.Errorf("normalized record %v still flagged incomplete", r)
		}
		if r.Date != "2024-03-15" {
			t.Errorf("record date = %q, want truncated 2024-03-15", r.Date)
		}
	}
}

func TestRecordsCorruptBlobReadsEmpty(t *testing.T) {
	kv := storage.NewMemStore()
	if err := kv.Set(constants.CompletionsKey, `"not an array"`); err != nil {
		t.Fatal(err)
	}

	ledger := NewLedger(kv)
	if recs := ledger.Records(); len(recs) != 0 {
		t.Errorf("corrupt ledger should read as empty, got %d records", len(recs))
	}
}

func TestToggleOnThenOff(t *testing.T) {
	kv := storage.NewMemStore()
	ledger := NewLedger(kv)
	today := day("2024-03-15")

	if err := ledger.Toggle("h1", today, false); err != nil {
		t.Fatalf("Toggle on failed: %v", err)
	}
	if !ledger.IsSatisfied("h1", today, models.FrequencyDaily) {
		t.Error("habit should be satisfied after toggle on")
	}

	if err := ledger.Toggle("h1", today, true); err != nil {
		t.Fatalf("Toggle off failed: %v", err)
	}
	if ledger.IsSatisfied("h1", today, models.FrequencyDaily) {
		t.Error("habit should not be satisfied after toggle off")
	}
	if recs := ledger.Records(); len(recs) != 0 {
		t.Errorf("ledger should be empty after toggle off, got %d records", len(recs))
	}
}

func TestToggleOffRemovesDuplicates(t *testing.T) {
	kv := storage.NewMemStore()
	seedLedger(t, kv, []models.CompletionRecord{
		{HabitID: "h1", Date: "2024-03-15", Completed: true},
		{HabitID: "h1", Date: "2024-03-15T09:00:00Z", Completed: true},
		{HabitID: "h1", Date: "2024-03-14", Completed: true},
	})

	ledger := NewLedger(kv)
	if err := ledger.Toggle("h1", day("2024-03-15"), true); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	recs := ledger.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1 (both same-day records removed)", len(recs))
	}
	if recs[0].Date != "2024-03-14" {
		t.Errorf("surviving record date = %q, want 2024-03-14", recs[0].Date)
	}
}

func TestToggleOffMissingRecordIsNoop(t *testing.T) {
	kv := storage.NewMemStore()
	ledger := NewLedger(kv)

	if err := ledger.Toggle("h1", day("2024-03-15"), true); err != nil {
		t.Fatalf("toggling off a missing record should not error: %v", err)
	}
}

func TestIsSatisfiedWeeklyPeriod(t *testing.T) {
	kv := storage.NewMemStore()
	// Monday of the week containing Friday 2024-03-15.
	seedLedger(t, kv, []models.CompletionRecord{
		{HabitID: "h1", Date: "2024-03-11", Completed: true},
	})

	ledger := NewLedger(kv)
	if !ledger.IsSatisfied("h1", day("2024-03-15"), models.FrequencyWeekly) {
		t.Error("weekly habit should be satisfied by a record earlier in the same week")
	}
	if ledger.IsSatisfied("h1", day("2024-03-09"), models.FrequencyWeekly) {
		t.Error("record must not satisfy the previous week")
	}
}

func TestIsSatisfiedMonthlyPeriod(t *testing.T) {
	kv := storage.NewMemStore()
	seedLedger(t, kv, []models.CompletionRecord{
		{HabitID: "h1", Date: "2024-03-01", Completed: true},
	})

	ledger := NewLedger(kv)
	if !ledger.IsSatisfied("h1", day("2024-03-31"), models.FrequencyMonthly) {
		t.Error("monthly habit should be satisfied anywhere in the month")
	}
	if ledger.IsSatisfied("h1", day("2024-04-01"), models.FrequencyMonthly) {
		t.Error("record must not satisfy the next month")
	}
}

func TestPruneHabit(t *testing.T) {
	kv := storage.NewMemStore()
	seedLedger(t, kv, []models.CompletionRecord{
		{HabitID: "h1", Date: "2024-03-14", Completed: true},
		{HabitID: "h1", Date: "2024-03-15", Completed: true},
		{HabitID: "h2", Date: "2024-03-15", Completed: true},
	})

	ledger := NewLedger(kv)
	if err := ledger.PruneHabit("h1"); err != nil {
		t.Fatalf("PruneHabit failed: %v", err)
	}

	recs := ledger.Records()
	if len(recs) != 1 || recs[0].HabitID != "h2" {
		t.Errorf("after prune got %v, want only h2's record", recs)
	}
}
