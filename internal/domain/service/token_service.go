package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityClaims are the claims read from an identity-provider access token.
type IdentityClaims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email,omitempty"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IdentityVerifier validates bearer tokens issued by the external identity provider.
// The service never issues user tokens itself.
type IdentityVerifier interface {
	// Verify parses and validates tokenString and returns its claims.
	Verify(tokenString string) (*IdentityClaims, error)
}
