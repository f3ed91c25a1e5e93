package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/keyring"
	"github.com/jmills-dev/streaks/internal/logger"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/storage"
	"github.com/jmills-dev/streaks/internal/validation"
)

var (
	// ErrInvalidCredentials is returned when login email or password does not
	// match the stored account.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotLoggedIn is returned when no session is active.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrAlreadyRegistered is returned when a profile already exists.
	ErrAlreadyRegistered = errors.New("an account is already registered on this device")
)

// Manager owns the single on-device account and its login session. The
// password lives in the OS keyring; when no keyring is available it falls
// back to storing it in the profile blob, with a logged warning.
type Manager struct {
	kv storage.KV
	mu sync.Mutex
}

func NewManager(kv storage.KV) *Manager {
	return &Manager{kv: kv}
}

// Register creates the device profile. Fails if one already exists.
func (m *Manager) Register(firstName, lastName, email, password, confirm string) (models.Profile, error) {
	if err := validation.ValidateRegistration(firstName, lastName, email, password, confirm); err != nil {
		return models.Profile{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.profile(); err == nil {
		return models.Profile{}, ErrAlreadyRegistered
	}

	profile := models.Profile{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := keyring.SetPassword(password); err != nil {
		if !errors.Is(err, keyring.ErrKeyringUnavailable) {
			return models.Profile{}, err
		}
		logger.Warn("OS keyring unavailable, storing password in profile storage", "error", err)
		profile.Password = password
	}

	if err := m.saveProfile(profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// Login checks the supplied credentials against the stored account and, on
// success, records the session.
func (m *Manager) Login(email, password string) (models.Session, error) {
	if err := validation.ValidateLogin(email, password); err != nil {
		return models.Session{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profile, err := m.profile()
	if err != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	if !strings.EqualFold(profile.Email, strings.TrimSpace(email)) {
		return models.Session{}, ErrInvalidCredentials
	}

	stored, err := m.storedPassword(profile)
	if err != nil {
		return models.Session{}, err
	}
	if stored != password {
		return models.Session{}, ErrInvalidCredentials
	}

	sess := models.Session{
		ID:         uuid.New().String(),
		Email:      profile.Email,
		LoggedInAt: time.Now().UTC().Format(time.RFC3339),
	}
	logger.Info("New login session", "sessionId", sess.ID, "email", sess.Email)

	data, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := m.kv.Set(constants.SessionKey, string(data)); err != nil {
		return models.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess, nil
}

// Logout clears the session flag. Logging out while logged out is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv.Remove(constants.SessionKey)
}

// Current returns the active session, or ErrNotLoggedIn.
func (m *Manager) Current() (models.Session, error) {
	blob, ok, err := m.kv.Get(constants.SessionKey)
	if err != nil {
		return models.Session{}, err
	}
	if !ok {
		return models.Session{}, ErrNotLoggedIn
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(blob), &sess); err != nil {
		logger.Warn("Session blob is corrupt, treating as logged out", "error", err)
		return models.Session{}, ErrNotLoggedIn
	}
	return sess, nil
}

// Profile returns the registered account, or ErrNotLoggedIn when none
// exists.
func (m *Manager) Profile() (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile()
}

func (m *Manager) profile() (models.Profile, error) {
	blob, ok, err := m.kv.Get(constants.ProfileKey)
	if err != nil {
		return models.Profile{}, err
	}
	if !ok {
		return models.Profile{}, ErrNotLoggedIn
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(blob), &profile); err != nil {
		logger.Warn("Profile blob is corrupt, treating as unregistered", "error", err)
		return models.Profile{}, ErrNotLoggedIn
	}
	return profile, nil
}

func (m *Manager) saveProfile(profile models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := m.kv.Set(constants.ProfileKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

func (m *Manager) storedPassword(profile models.Profile) (string, error) {
	secret, err := keyring.GetPassword()
	if err == nil {
		return secret, nil
	}
	if errors.Is(err, keyring.ErrNotFound) || errors.Is(err, keyring.ErrKeyringUnavailable) {
		if profile.Password != "" {
			return profile.Password, nil
		}
		return "", ErrInvalidCredentials
	}
	return "", err
}
