package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jmills-dev/streaks/internal/apperr"
	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateDraft checks a habit creation form. Title is the only required
// field; frequency, when present, must be one of the three supported values.
func ValidateDraft(draft models.HabitDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return apperr.NewValidation("title", "title is required")
	}
	if draft.Frequency != "" && !draft.Frequency.Valid() {
		return apperr.NewValidation("frequency", fmt.Sprintf("unknown frequency %q (expected daily, weekly, or monthly)", draft.Frequency))
	}
	return nil
}

// ValidatePatch checks a habit edit. A patch may leave any field untouched,
// but cannot blank the title or set an unknown frequency.
func ValidatePatch(patch models.HabitPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return apperr.NewValidation("title", "title is required")
	}
	if patch.Frequency != nil && *patch.Frequency != "" && !patch.Frequency.Valid() {
		return apperr.NewValidation("frequency", fmt.Sprintf("unknown frequency %q (expected daily, weekly, or monthly)", *patch.Frequency))
	}
	return nil
}

// ValidateRegistration checks the registration form: names present, email
// well-formed, password long enough and matching its confirmation.
func ValidateRegistration(firstName, lastName, email, password, confirm string) error {
	if strings.TrimSpace(firstName) == "" {
		return apperr.NewValidation("firstName", "first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return apperr.NewValidation("lastName", "last name is required")
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if len(password) < constants.MinPasswordLength {
		return apperr.NewValidation("password", fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	}
	if password != confirm {
		return apperr.NewValidation("confirmPassword", "passwords don't match")
	}
	return nil
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if len(password) < constants.MinPasswordLength {
		return apperr.NewValidation("password", fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	}
	return nil
}

// ValidateEmail checks basic address shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperr.NewValidation("email", "invalid email address")
	}
	return nil
}
