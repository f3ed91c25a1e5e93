package models

// Frequency determines the period granularity for streak tracking. A habit
// with no frequency is excluded from all period-based aggregation.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is one of the three supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Category picker values. Free strings are accepted as well; these are just
// the suggested options.
const (
	CategoryHealth       = "health"
	CategoryFitness      = "fitness"
	CategoryProductivity = "productivity"
	CategoryMentalHealth = "mental_health"
	CategoryLearning     = "learning"
)

// Icon identifiers offered by the habit form.
var IconOptions = []string{
	"water-outline",
	"bicycle-outline",
	"medkit-outline",
	"book-outline",
	"heart-outline",
	"sunny-outline",
}

// Habit represents a user-defined recurring behavior to track.
//
// Completed and Streak are derived fields: they are recomputed from the
// completion ledger relative to "now" on every load and must never be
// trusted from persisted data.
type Habit struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Frequency   Frequency `json:"frequency"`
	Icon        string    `json:"icon"`
	CreatedAt   string    `json:"createdAt"` // RFC 3339, set once at creation
	Completed   bool      `json:"completed"`
	Streak      int       `json:"streak"`
}

// HabitDraft carries the fields a user supplies when creating a habit.
type HabitDraft struct {
	Title       string
	Description string
	Category    string
	Frequency   Frequency
	Icon        string
}

// HabitPatch carries an edit. Nil fields are left unchanged. ID, CreatedAt,
// and Icon identity persist through edits unless explicitly re-chosen.
type HabitPatch struct {
	Title       *string
	Description *string
	Category    *string
	Frequency   *Frequency
	Icon        *string
}
