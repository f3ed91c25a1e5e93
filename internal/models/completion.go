package models

// CompletionRecord is an event asserting a habit was satisfied on a calendar
// date. The date has no time-of-day significance; any time component present
// in stored data is stripped before comparison.
//
// A record with Completed == false is equivalent to the record being absent.
// Both representations occur in stored data and are normalized on read.
type CompletionRecord struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}
