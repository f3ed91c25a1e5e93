package apperr

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmills-dev/streaks/internal/logger"
)

var (
	// ErrNotFound is returned when an operation references a habit id that is
	// not present in the store.
	ErrNotFound = errors.New("habit not found")

	// ErrStorageCorrupt marks a persisted blob that failed to parse. It is
	// recovered locally (the collection is treated as empty) and logged; it is
	// never surfaced to callers as a fatal error.
	ErrStorageCorrupt = errors.New("persisted data is corrupt")
)

// ValidationError reports a rejected user input. These surface to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
