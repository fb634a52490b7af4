package auth

import "context"

// Authenticator defines the interface for lock implementations.
// This abstraction allows swapping the PIN for another credential (passphrase,
// device key, etc.) without changing the service layer code.
type Authenticator interface {
	// SetCredential validates and stores a new credential, enabling the lock.
	SetCredential(ctx context.Context, credential string) error

	// Authenticate verifies the credential against the stored one.
	Authenticate(ctx context.Context, credential string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error

	// Disable removes the stored credential and turns the lock off.
	Disable(ctx context.Context)
}
