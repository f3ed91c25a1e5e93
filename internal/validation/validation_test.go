package validation

import (
	"testing"

	"github.com/jmills-dev/streaks/internal/apperr"
	"github.com/jmills-dev/streaks/internal/models"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.HabitDraft
		wantErr bool
	}{
		{"valid", models.HabitDraft{Title: "Run", Frequency: models.FrequencyDaily}, false},
		{"no frequency", models.HabitDraft{Title: "Run"}, false},
		{"empty title", models.HabitDraft{Title: ""}, true},
		{"whitespace title", models.HabitDraft{Title: "   "}, true},
		{"bad frequency", models.HabitDraft{Title: "Run", Frequency: "hourly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperr.IsValidation(err) {
				t.Errorf("error should be a validation error, got %T", err)
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	empty := ""
	good := "Read"
	bad := models.Frequency("hourly")
	weekly := models.FrequencyWeekly

	if err := ValidatePatch(models.HabitPatch{}); err != nil {
		t.Errorf("empty patch should be valid, got %v", err)
	}
	if err := ValidatePatch(models.HabitPatch{Title: &good, Frequency: &weekly}); err != nil {
		t.Errorf("valid patch rejected: %v", err)
	}
	if err := ValidatePatch(models.HabitPatch{Title: &empty}); err == nil {
		t.Error("patch blanking the title should be rejected")
	}
	if err := ValidatePatch(models.HabitPatch{Frequency: &bad}); err == nil {
		t.Error("patch with unknown frequency should be rejected")
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name                                        string
		first, last, email, password, confirm       string
		wantErr                                     bool
	}{
		{"valid", "Ada", "Lovelace", "ada@example.com", "secret1", "secret1", false},
		{"missing first name", "", "Lovelace", "ada@example.com", "secret1", "secret1", true},
		{"missing last name", "Ada", "", "ada@example.com", "secret1", "secret1", true},
		{"bad email", "Ada", "Lovelace", "not-an-email", "secret1", "secret1", true},
		{"short password", "Ada", "Lovelace", "ada@example.com", "abc", "abc", true},
		{"mismatched confirm", "Ada", "Lovelace", "ada@example.com", "secret1", "secret2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.first, tt.last, tt.email, tt.password, tt.confirm)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x+tag@sub.domain.org"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "plain", "a@b", "a b@c.com", "@example.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}
