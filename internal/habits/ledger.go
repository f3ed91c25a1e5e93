package habits

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jmills-dev/streaks/internal/apperr"
	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/logger"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/storage"
	"github.com/jmills-dev/streaks/internal/utils"
)

// Ledger owns the completion records: the source of truth for "was this
// habit satisfied on date D". The collection is read and written whole;
// the mutex keeps read-modify-write toggles serialized so a second toggle
// cannot overwrite the first with a stale snapshot.
type Ledger struct {
	kv storage.KV
	mu sync.Mutex
}

func NewLedger(kv storage.KV) *Ledger {
	return &Ledger{kv: kv}
}

// Records returns the normalized ledger: records flagged completed == false
// and records with unparseable dates are dropped, and dates are truncated to
// their YYYY-MM-DD portion. Presence of a record is the canonical
// representation of satisfaction; stored data may carry either explicit
// false-records or omissions and both read identically.
func (l *Ledger) Records() []models.CompletionRecord {
	raw := l.load()
	records := make([]models.CompletionRecord, 0, len(raw))
	for _, r := range raw {
		if !r.Completed {
			continue
		}
		day := utils.TruncateDate(r.Date)
		if _, err := utils.ParseDate(day); err != nil {
			logger.Warn("Skipping completion record with malformed date", "habitId", r.HabitID, "date", r.Date)
			continue
		}
		r.Date = day
		records = append(records, r)
	}
	return records
}

// IsSatisfied reports whether the habit has a satisfying record in the
// period containing date: the exact day for daily habits, the Sunday-start
// calendar week for weekly, the calendar month for monthly. An unset
// frequency is never satisfied. Records referencing unknown habit ids simply
// never match.
func (l *Ledger) IsSatisfied(habitID string, date time.Time, freq models.Frequency) bool {
	return satisfiedInPeriod(l.Records(), habitID, date, freq)
}

// Toggle flips the completion state for (habitID, today). When the habit was
// satisfied, every record for that exact day is removed (removing a missing
// record is a no-op); otherwise a new record is appended. The whole ledger is
// persisted before Toggle returns.
func (l *Ledger) Toggle(habitID string, today time.Time, wasSatisfied bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := utils.FormatDate(today)
	raw := l.load()

	if wasSatisfied {
		kept := make([]models.CompletionRecord, 0, len(raw))
		for _, r := range raw {
			if r.HabitID == habitID && utils.TruncateDate(r.Date) == day {
				continue
			}
			kept = append(kept, r)
		}
		raw = kept
	} else {
		raw = append(raw, models.CompletionRecord{
			HabitID:   habitID,
			Date:      day,
			Completed: true,
		})
	}

	return l.persist(raw)
}

// PruneHabit drops all records belonging to a habit. Called on habit
// deletion; leftover dangling records are tolerated by every reader, so a
// failed prune is not fatal to the delete.
func (l *Ledger) PruneHabit(habitID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw := l.load()
	kept := make([]models.CompletionRecord, 0, len(raw))
	for _, r := range raw {
		if r.HabitID == habitID {
			continue
		}
		kept = append(kept, r)
	}

	if len(kept) == len(raw) {
		return nil
	}
	return l.persist(kept)
}

// load reads the raw ledger blob. A missing key or a blob that fails to
// parse both read as an empty ledger; corruption is logged, never raised.
func (l *Ledger) load() []models.CompletionRecord {
	blob, ok, err := l.kv.Get(constants.CompletionsKey)
	if err != nil || !ok {
		if err != nil {
			logger.Warn("Failed to read completion ledger", "error", err)
		}
		return nil
	}

	var records []models.CompletionRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		logger.Warn("Completion ledger is corrupt, treating as empty",
			"error", fmt.Errorf("%w: %v", apperr.ErrStorageCorrupt, err))
		return nil
	}
	return records
}

func (l *Ledger) persist(records []models.CompletionRecord) error {
	if records == nil {
		records = []models.CompletionRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize completion ledger: %w", err)
	}
	if err := l.kv.Set(constants.CompletionsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist completion ledger: %w", err)
	}
	return nil
}

// satisfiedInPeriod checks a normalized record slice for a match in the
// period containing date.
func satisfiedInPeriod(records []models.CompletionRecord, habitID string, date time.Time, freq models.Frequency) bool {
	var start, end time.Time
	switch freq {
	case models.FrequencyDaily:
		start = utils.DayOf(date)
		end = start
	case models.FrequencyWeekly:
		start = utils.WeekStart(date)
		end = utils.WeekEnd(date)
	case models.FrequencyMonthly:
		start = utils.MonthStart(date)
		end = utils.MonthEnd(date)
	default:
		return false
	}

	for _, r := range records {
		if r.HabitID != habitID {
			continue
		}
		day, err := utils.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if utils.InRange(day, start, end) {
			return true
		}
	}
	return false
}
