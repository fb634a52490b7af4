package ledger

import (
	"context"
	"strings"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// UpdateProfile replaces the owner settings while keeping the PIN state.
func (l *Ledger) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := calculator.ValidateProfile(p); err != nil {
		return models.Profile{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	p.IsPINEnabled = l.snap.Profile.IsPINEnabled
	p.PINHash = l.snap.Profile.PINHash
	snap := l.snap
	snap.Profile = p
	l.commit(ctx, snap, Profile)
	return p, nil
}

// SetPINHash enables the PIN lock with an already hashed PIN.
func (l *Ledger) SetPINHash(ctx context.Context, hash string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Profile.PINHash = hash
	snap.Profile.IsPINEnabled = true
	l.commit(ctx, snap, Profile)
}

// DisablePIN turns the PIN lock off and forgets the hash.
func (l *Ledger) DisablePIN(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Profile.PINHash = ""
	snap.Profile.IsPINEnabled = false
	l.commit(ctx, snap, Profile)
}

// Locked reports whether RPCs need an unlocked session.
func (l *Ledger) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap.Profile.IsPINEnabled && l.snap.Profile.PINHash != ""
}

// PINHash returns the stored PIN hash, or "" when the lock is off.
func (l *Ledger) PINHash() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.snap.Profile.IsPINEnabled {
		return ""
	}
	return l.snap.Profile.PINHash
}
