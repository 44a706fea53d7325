package withings

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cortex/config"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
)

type tokenBody struct {
	UserID       service.ProviderID `json:"userid"`
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	ExpiresIn    int64              `json:"expires_in"`
	Scope        string             `json:"scope"`
	TokenType    string             `json:"token_type"`
}

// OAuth implements service.ProviderOAuth for Withings. The token endpoint is not plain
// OAuth 2.0: it needs action=requesttoken and answers inside the status envelope.
type OAuth struct {
	cfg        *config.ProviderConfig
	httpClient *http.Client
}

// NewOAuth builds the Withings OAuth adapter.
func NewOAuth(cfg *config.Config) service.ProviderOAuth {
	return newOAuth(cfg.Withings, &http.Client{Timeout: cfg.Withings.RequestTimeout})
}

func newOAuth(cfg *config.ProviderConfig, httpClient *http.Client) *OAuth {
	return &OAuth{cfg: cfg, httpClient: httpClient}
}

func (o *OAuth) Provider() entity.Provider {
	return entity.ProviderWithings
}

func (o *OAuth) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", o.cfg.ClientID)
	params.Set("scope", o.cfg.Scopes)
	params.Set("redirect_uri", o.cfg.RedirectURI)
	params.Set("state", state)

	return o.cfg.AuthURL + "?" + params.Encode()
}

// Exchange must run promptly: Withings codes expire about 30 seconds after issue.
func (o *OAuth) Exchange(ctx context.Context, code string) (*entity.TokenGrant, error) {
	form := url.Values{}
	form.Set("grant_type", grantAuthorizationCode)
	form.Set("code", code)
	form.Set("redirect_uri", o.cfg.RedirectURI)

	grant, err := o.requestToken(ctx, form)
	if err != nil {
		return nil, errors.Wrap(err, "withings code exchange")
	}

	return grant, nil
}

func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*entity.TokenGrant, error) {
	if refreshToken == "" {
		return nil, errors.New("withings refresh: empty refresh token")
	}

	form := url.Values{}
	form.Set("grant_type", grantRefreshToken)
	form.Set("refresh_token", refreshToken)

	grant, err := o.requestToken(ctx, form)
	if err != nil {
		return nil, errors.Wrap(err, "withings token refresh")
	}

	return grant, nil
}

func (o *OAuth) requestToken(ctx context.Context, form url.Values) (*entity.TokenGrant, error) {
	form.Set("action", "requesttoken")
	form.Set("client_id", o.cfg.ClientID)
	form.Set("client_secret", o.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call token endpoint")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(data))
	}

	var body tokenBody
	if err := decodeEnvelope(data, "requesttoken", &body); err != nil {
		return nil, err
	}
	if body.AccessToken == "" {
		return nil, errors.New("token response carried no access token")
	}

	return &entity.TokenGrant{
		AccessToken:    body.AccessToken,
		RefreshToken:   body.RefreshToken,
		TokenType:      body.TokenType,
		Scopes:         body.Scope,
		ExpiresIn:      time.Duration(body.ExpiresIn) * time.Second,
		ProviderUserID: string(body.UserID),
	}, nil
}
