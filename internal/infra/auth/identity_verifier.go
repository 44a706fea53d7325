// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"cortex/config"
	"cortex/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtIdentityVerifier validates HS256 access tokens issued by the identity provider.
type jwtIdentityVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewIdentityVerifier is the constructor for jwtIdentityVerifier.
// Issuer and audience are only checked when configured.
func NewIdentityVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.JWTSecret == "" {
		return nil, errors.New("identity jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Identity.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Identity.Issuer))
	}
	if cfg.Identity.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Identity.Audience))
	}

	return &jwtIdentityVerifier{
		secret: []byte(cfg.Identity.JWTSecret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify parses tokenString and resolves the subject into a user id.
func (v *jwtIdentityVerifier) Verify(tokenString string) (*service.IdentityClaims, error) {
	claims := &service.IdentityClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse identity token")
	}
	if !token.Valid {
		return nil, errors.New("identity token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "identity token subject is not a user id")
	}
	claims.UserID = userID

	return claims, nil
}
