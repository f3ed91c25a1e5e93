package keyring

import (
	"errors"
	"fmt"

	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no password is stored in the keyring
	ErrNotFound = errors.New("password not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetPassword retrieves the account password from the OS keyring.
// Returns ErrNotFound if none is stored.
func GetPassword() (string, error) {
	secret, err := keyring.Get(constants.AppName, constants.KeyringPasswordUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		// Wrap other keyring errors as unavailable
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetPassword stores the account password in the OS keyring.
func SetPassword(secret string) error {
	if secret == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringPasswordUser, secret); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// DeletePassword removes the account password from the OS keyring.
func DeletePassword() error {
	err := keyring.Delete(constants.AppName, constants.KeyringPasswordUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}
