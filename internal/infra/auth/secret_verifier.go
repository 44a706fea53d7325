package auth

import (
	"cortex/config"
	"cortex/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptSecretVerifier compares presented secrets with a configured bcrypt hash.
type bcryptSecretVerifier struct {
	hash []byte
}

// NewSecretVerifier builds the cron secret verifier. An empty hash rejects everything.
func NewSecretVerifier(cfg *config.Config) service.SecretVerifier {
	var hash string
	if cfg.Cron != nil {
		hash = cfg.Cron.SecretHash
	}

	return &bcryptSecretVerifier{hash: []byte(hash)}
}

func (v *bcryptSecretVerifier) Verify(secret string) bool {
	if len(v.hash) == 0 || secret == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword(v.hash, []byte(secret)) == nil
}
