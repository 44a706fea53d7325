package auth

import (
	"testing"
	"time"

	"cortex/config"
	"cortex/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testIdentitySecret = "test_identity_secret_key_very_long_for_testing"

func newIdentityConfig(issuer, audience string) *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{
			JWTSecret: testIdentitySecret,
			Issuer:    issuer,
			Audience:  audience,
		},
	}
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestIdentityVerifier_Verify(t *testing.T) {
	verifier, err := NewIdentityVerifier(newIdentityConfig("https://auth.example.com", "authenticated"))
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, testIdentitySecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "ada@example.com",
		"role":  "authenticated",
		"iss":   "https://auth.example.com",
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestIdentityVerifier_Rejects(t *testing.T) {
	verifier, err := NewIdentityVerifier(newIdentityConfig("", "authenticated"))
	require.NoError(t, err)

	valid := jwt.MapClaims{
		"sub": uuid.NewString(),
		"aud": "authenticated",
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: signToken(t, "another_secret_that_is_long_enough_to_sign", jwt.SigningMethodHS256, valid),
		},
		{
			name: "expired",
			token: signToken(t, testIdentitySecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": uuid.NewString(),
				"aud": "authenticated",
				"exp": time.Now().Add(-time.Minute).Unix(),
			}),
		},
		{
			name: "missing expiry",
			token: signToken(t, testIdentitySecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": uuid.NewString(),
				"aud": "authenticated",
			}),
		},
		{
			name: "wrong audience",
			token: signToken(t, testIdentitySecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": uuid.NewString(),
				"aud": "anon",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
		{
			name: "subject is not a uuid",
			token: signToken(t, testIdentitySecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "user-42",
				"aud": "authenticated",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
		{
			name:  "other hmac method",
			token: signToken(t, testIdentitySecret, jwt.SigningMethodHS512, valid),
		},
		{
			name:  "garbage",
			token: "not-a-jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.Verify(tt.token)

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewIdentityVerifier_RequiresSecret(t *testing.T) {
	_, err := NewIdentityVerifier(&config.Config{})

	assert.Error(t, err)
}

func TestSecretVerifier_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("cron-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewSecretVerifier(&config.Config{Cron: &config.CronConfig{SecretHash: string(hash)}})

	assert.True(t, verifier.Verify("cron-secret"))
	assert.False(t, verifier.Verify("wrong"))
	assert.False(t, verifier.Verify(""))
}

func TestSecretVerifier_EmptyHashRejectsAll(t *testing.T) {
	verifier := NewSecretVerifier(&config.Config{})

	assert.False(t, verifier.Verify("anything"))
}

func TestStateStore_IssueAndConsume(t *testing.T) {
	store := NewStateStore()
	userID := uuid.New()

	state, err := store.Issue(userID, entity.ProviderWithings)
	require.NoError(t, err)
	assert.Len(t, state, 64)

	gotUser, gotProvider, ok := store.Consume(state)
	assert.True(t, ok)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, entity.ProviderWithings, gotProvider)

	_, _, ok = store.Consume(state)
	assert.False(t, ok, "state must be single use")
}

func TestStateStore_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStateStore(func() time.Time { return now })

	state, err := store.Issue(uuid.New(), entity.ProviderWhoop)
	require.NoError(t, err)

	now = now.Add(stateTTL + time.Second)

	_, _, ok := store.Consume(state)
	assert.False(t, ok)
}

func TestStateStore_UnknownState(t *testing.T) {
	_, _, ok := NewStateStore().Consume("forged")

	assert.False(t, ok)
}
