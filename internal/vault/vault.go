// Package vault implements the password gate that confirms the user is
// present before private-content checks are trusted. The password is stored
// only as a salted one-way hash; the unlocked flag lives in memory and
// resets on every process start.
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/murmurapp/murmur/internal/common"
)

// CredentialStore persists the vault password hash.
type CredentialStore interface {
	// GetVaultHash returns the stored hash, or "" when no password has
	// ever been set.
	GetVaultHash(ctx context.Context) (string, error)
	SetVaultHash(ctx context.Context, hash string) error
}

// Vault tracks the in-memory unlock state backed by a durable credential.
// Construct one per process; there are no package-level globals.
type Vault struct {
	store    CredentialStore
	logger   *slog.Logger
	mu       sync.Mutex
	unlocked bool
}

// New creates a vault. It starts locked; a vault with no password set
// behaves as permanently unlocked.
func New(store CredentialStore, logger *slog.Logger) *Vault {
	if logger == nil {
		logger = slog.Default()
	}
	return &Vault{
		store:  store,
		logger: logger,
	}
}

// HasPassword reports whether a vault password has ever been set.
func (v *Vault) HasPassword(ctx context.Context) (bool, error) {
	hash, err := v.store.GetVaultHash(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read vault credential: %w", err)
	}
	return hash != "", nil
}

// IsUnlocked reports whether private-content checks can currently be
// trusted. A vault with no password is always unlocked.
func (v *Vault) IsUnlocked(ctx context.Context) (bool, error) {
	hasPassword, err := v.HasPassword(ctx)
	if err != nil {
		return false, err
	}
	if !hasPassword {
		return true, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.unlocked, nil
}

// Unlock verifies the password and unlocks the vault. With no password set
// it returns true unconditionally (first-run bootstrap). A failed attempt
// leaves the lock state untouched. Attempts are not throttled.
func (v *Vault) Unlock(ctx context.Context, password string) (bool, error) {
	hash, err := v.store.GetVaultHash(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read vault credential: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if hash == "" {
		v.unlocked = true
		return true, nil
	}

	ok, err := verifyPassword(hash, password)
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		v.logger.Warn("vault unlock attempt failed")
		return false, nil
	}

	v.unlocked = true
	return true, nil
}

// Lock relocks the vault. A vault with no password cannot be locked.
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unlocked = false
}

// SetPassword stores a new vault password and unlocks the vault. An empty
// password is rejected.
func (v *Vault) SetPassword(ctx context.Context, password string) error {
	if password == "" {
		return common.ErrEmptyPassword
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := v.store.SetVaultHash(ctx, hash); err != nil {
		return fmt.Errorf("failed to store vault credential: %w", err)
	}

	v.mu.Lock()
	v.unlocked = true
	v.mu.Unlock()

	v.logger.Info("vault password updated")
	return nil
}
