package habits

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jmills-dev/streaks/internal/apperr"
	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/logger"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/storage"
	"github.com/jmills-dev/streaks/internal/validation"
)

// Store owns the habit collection. Every mutation is a whole-collection
// read-modify-write against the key-value collaborator, serialized by the
// mutex: a mutating call returns only after its snapshot has been persisted,
// so two back-to-back mutations cannot lose each other's writes.
type Store struct {
	kv     storage.KV
	ledger *Ledger
	mu     sync.Mutex
	now    func() time.Time
}

func NewStore(kv storage.KV, ledger *Ledger) *Store {
	return &Store{
		kv:     kv,
		ledger: ledger,
		now:    time.Now,
	}
}

// List loads the full habit collection with derived fields recomputed from
// the ledger relative to now. A missing or corrupt persisted blob yields an
// empty collection, never an error.
func (s *Store) List() ([]models.Habit, error) {
	raw := s.load()
	records := s.ledger.Records()
	now := s.now()

	habits := make([]models.Habit, 0, len(raw))
	for _, h := range raw {
		habits = append(habits, DeriveView(h, records, now))
	}
	return habits, nil
}

// Get returns a single habit by id, derived.
func (s *Store) Get(id string) (models.Habit, error) {
	for _, h := range s.load() {
		if h.ID == id {
			return DeriveView(h, s.ledger.Records(), s.now()), nil
		}
	}
	return models.Habit{}, apperr.ErrNotFound
}

// Create validates the draft, assigns a creation-time-derived id and
// timestamp, and persists the grown collection.
func (s *Store) Create(draft models.HabitDraft) (models.Habit, error) {
	if err := validation.ValidateDraft(draft); err != nil {
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.load()
	now := s.now()

	icon := draft.Icon
	if icon == "" {
		icon = constants.DefaultIcon
	}

	habit := models.Habit{
		ID:          s.newID(raw, now),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Frequency:   draft.Frequency,
		Icon:        icon,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}

	raw = append(raw, habit)
	if err := s.persist(raw); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Update merges the patch into the habit matching id. Only title,
// description, category, frequency, and (when explicitly re-chosen) icon are
// mutable; id and createdAt persist. Returns ErrNotFound for an unknown id.
func (s *Store) Update(id string, patch models.HabitPatch) (models.Habit, error) {
	if err := validation.ValidatePatch(patch); err != nil {
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.load()
	for i, h := range raw {
		if h.ID != id {
			continue
		}

		if patch.Title != nil {
			h.Title = *patch.Title
		}
		if patch.Description != nil {
			h.Description = *patch.Description
		}
		if patch.Category != nil {
			h.Category = *patch.Category
		}
		if patch.Frequency != nil {
			h.Frequency = *patch.Frequency
		}
		if patch.Icon != nil {
			h.Icon = *patch.Icon
		}

		raw[i] = h
		if err := s.persist(raw); err != nil {
			return models.Habit{}, err
		}
		return DeriveView(h, s.ledger.Records(), s.now()), nil
	}

	return models.Habit{}, apperr.ErrNotFound
}

// Delete removes the habit with that id and prunes its completion records.
// Deleting an absent id is a no-op, not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.load()
	kept := make([]models.Habit, 0, len(raw))
	for _, h := range raw {
		if h.ID == id {
			continue
		}
		kept = append(kept, h)
	}

	if len(kept) == len(raw) {
		return nil
	}

	if err := s.persist(kept); err != nil {
		return err
	}

	// Stale records for the deleted habit would be ignored by every reader
	// anyway, so a failed prune only warrants a warning.
	if err := s.ledger.PruneHabit(id); err != nil {
		logger.Warn("Failed to prune completion records for deleted habit", "habitId", id, "error", err)
	}
	return nil
}

// Toggle flips today's completion state for the habit and returns its fresh
// derived view. This is the single entry point the UI uses for the check
// button: ledger write first, then recompute.
func (s *Store) Toggle(id string) (models.Habit, error) {
	habit, err := s.Get(id)
	if err != nil {
		return models.Habit{}, err
	}

	if err := s.ledger.Toggle(habit.ID, s.now(), habit.Completed); err != nil {
		return models.Habit{}, err
	}
	return s.Get(id)
}

// newID derives a unique id from the creation time in Unix milliseconds.
// Same-millisecond collisions bump forward until free.
func (s *Store) newID(existing []models.Habit, now time.Time) string {
	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		seen[h.ID] = true
	}

	ms := now.UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for seen[id] {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	return id
}

// load reads the raw habit collection. Parse failure is a local recovery:
// warn and start from an empty collection rather than surfacing the error.
func (s *Store) load() []models.Habit {
	blob, ok, err := s.kv.Get(constants.HabitsKey)
	if err != nil || !ok {
		if err != nil {
			logger.Warn("Failed to read habit collection", "error", err)
		}
		return nil
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(blob), &habits); err != nil {
		logger.Warn("Habit collection is corrupt, treating as empty",
			"error", fmt.Errorf("%w: %v", apperr.ErrStorageCorrupt, err))
		return nil
	}
	return habits
}

func (s *Store) persist(habits []models.Habit) error {
	if habits == nil {
		habits = []models.Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to serialize habit collection: %w", err)
	}
	if err := s.kv.Set(constants.HabitsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist habit collection: %w", err)
	}
	return nil
}
