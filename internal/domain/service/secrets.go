// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// SecretVerifier checks a presented shared secret against a stored hash.
// It guards machine-to-machine endpoints such as the scheduled batch sync.
type SecretVerifier interface {
	// Verify reports whether secret matches the configured hash.
	Verify(secret string) bool
}

// TokenCipher encrypts provider credentials before they reach storage.
type TokenCipher interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}
