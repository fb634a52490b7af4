package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN = errors.New("incorrect PIN")
	ErrWeakPIN    = errors.New("PIN must be 4 to 6 digits")
	ErrPINNotSet  = errors.New("PIN lock is not enabled")
)

// PINStorage defines where the PIN hash lives.
// This allows the authenticator to be independent of the state owner.
type PINStorage interface {
	PINHash() string
	SetPINHash(ctx context.Context, hash string)
	DisablePIN(ctx context.Context)
}

// PINAuthenticator implements PIN-based locking using bcrypt.
type PINAuthenticator struct {
	storage PINStorage
}

// Ensure PINAuthenticator implements Authenticator
var _ Authenticator = (*PINAuthenticator)(nil)

// NewPINAuthenticator creates a new PIN-based authenticator.
func NewPINAuthenticator(storage PINStorage) *PINAuthenticator {
	return &PINAuthenticator{storage: storage}
}

// ValidateCredential checks that the PIN is 4 to 6 ASCII digits.
func (a *PINAuthenticator) ValidateCredential(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return ErrWeakPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrWeakPIN
		}
	}
	return nil
}

// SetCredential hashes the PIN and enables the lock.
func (a *PINAuthenticator) SetCredential(ctx context.Context, pin string) error {
	if err := a.ValidateCredential(pin); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	a.storage.SetPINHash(ctx, string(hash))
	return nil
}

// Authenticate compares the PIN with the stored hash.
func (a *PINAuthenticator) Authenticate(_ context.Context, pin string) error {
	hash := a.storage.PINHash()
	if hash == "" {
		return ErrPINNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// Disable turns the lock off.
func (a *PINAuthenticator) Disable(ctx context.Context) {
	a.storage.DisablePIN(ctx)
}
