package whoop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"cortex/config"
	"cortex/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuth(tokenURL string) *OAuth {
	return newOAuth(&config.ProviderConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://cortex.example.com/oauth/whoop/callback",
		Scopes:       "offline read:recovery read:cycles",
		AuthURL:      "https://api.prod.whoop.com/oauth/oauth2/auth",
		TokenURL:     tokenURL,
	}, http.DefaultClient)
}

func TestOAuth_AuthorizationURL(t *testing.T) {
	o := newTestOAuth("https://api.prod.whoop.com/oauth/oauth2/token")

	raw := o.AuthorizationURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "api.prod.whoop.com", u.Host)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "offline read:recovery read:cycles", q.Get("scope"))
	assert.Equal(t, "https://cortex.example.com/oauth/whoop/callback", q.Get("redirect_uri"))
	assert.Equal(t, entity.ProviderWhoop, o.Provider())
}

func TestOAuth_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,"token_type":"bearer","scope":"offline read:cycles"}`))
	}))
	defer server.Close()

	grant, err := newTestOAuth(server.URL).Exchange(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "at", grant.AccessToken)
	assert.Equal(t, "rt", grant.RefreshToken)
	assert.Equal(t, "offline read:cycles", grant.Scopes)
	assert.InDelta(t, time.Hour.Seconds(), grant.ExpiresIn.Seconds(), 5)
}

func TestOAuth_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "old-rt", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new-at","refresh_token":"new-rt","expires_in":3600,"token_type":"bearer"}`))
	}))
	defer server.Close()

	grant, err := newTestOAuth(server.URL).Refresh(context.Background(), "old-rt")

	require.NoError(t, err)
	assert.Equal(t, "new-at", grant.AccessToken)
	assert.Equal(t, "new-rt", grant.RefreshToken)
}

func TestOAuth_Refresh_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	grant, err := newTestOAuth(server.URL).Refresh(context.Background(), "revoked")

	require.Error(t, err)
	assert.Nil(t, grant)
}
