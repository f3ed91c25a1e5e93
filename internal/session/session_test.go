package session

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/jmills-dev/streaks/internal/apperr"
	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/storage"
)

func register(t *testing.T, mgr *Manager) {
	t.Helper()
	_, err := mgr.Register("Ada", "Lovelace", "ada@example.com", "secret1", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())
	register(t, mgr)

	sess, err := mgr.Login("ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sess.Email != "ada@example.com" {
		t.Errorf("session email = %q, want ada@example.com", sess.Email)
	}
	if sess.ID == "" {
		t.Error("session should carry an id")
	}

	current, err := mgr.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current.Email != sess.Email {
		t.Errorf("Current() email = %q, want %q", current.Email, sess.Email)
	}
}

func TestRegisterRejectsSecondAccount(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())
	register(t, mgr)

	_, err := mgr.Register("Grace", "Hopper", "grace@example.com", "secret1", "secret1")
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second Register err = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())

	_, err := mgr.Register("Ada", "Lovelace", "bad-email", "secret1", "secret1")
	if !apperr.IsValidation(err) {
		t.Errorf("Register with bad email err = %v, want validation error", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())
	register(t, mgr)

	_, err := mgr.Login("ada@example.com", "wrong-1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())
	register(t, mgr)

	if _, err := mgr.Login("ADA@Example.COM", "secret1"); err != nil {
		t.Errorf("Login with differently-cased email failed: %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())
	register(t, mgr)

	_, err := mgr.Login("nobody@example.com", "secret1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogout(t *testing.T) {
	gokeyring.MockInit()
	mgr := NewManager(storage.NewMemStore())
	register(t, mgr)

	if _, err := mgr.Login("ada@example.com", "secret1"); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := mgr.Current(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("Current after logout err = %v, want ErrNotLoggedIn", err)
	}

	// Logging out twice is a no-op.
	if err := mgr.Logout(); err != nil {
		t.Errorf("second Logout err = %v, want nil", err)
	}
}

func TestCurrentCorruptSessionReadsLoggedOut(t *testing.T) {
	gokeyring.MockInit()
	kv := storage.NewMemStore()
	mgr := NewManager(kv)

	if err := kv.Set(constants.SessionKey, "{broken"); err != nil {
		t.Fatal(err)
	}

	if _, err := mgr.Current(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("Current with corrupt session err = %v, want ErrNotLoggedIn", err)
	}
}
