package whoop

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cortex/config"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// OAuth implements service.ProviderOAuth for WHOOP, which speaks plain OAuth 2.0.
type OAuth struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// NewOAuth builds the WHOOP OAuth adapter.
func NewOAuth(cfg *config.Config) service.ProviderOAuth {
	return newOAuth(cfg.Whoop, &http.Client{Timeout: cfg.Whoop.RequestTimeout})
}

func newOAuth(cfg *config.ProviderConfig, httpClient *http.Client) *OAuth {
	return &OAuth{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       strings.Fields(cfg.Scopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

func (o *OAuth) Provider() entity.Provider {
	return entity.ProviderWhoop
}

func (o *OAuth) AuthorizationURL(state string) string {
	return o.config.AuthCodeURL(state)
}

func (o *OAuth) Exchange(ctx context.Context, code string) (*entity.TokenGrant, error) {
	token, err := o.config.Exchange(o.withClient(ctx), code)
	if err != nil {
		return nil, errors.Wrap(err, "whoop code exchange")
	}

	return toGrant(token), nil
}

func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*entity.TokenGrant, error) {
	if refreshToken == "" {
		return nil, errors.New("whoop refresh: empty refresh token")
	}

	// An empty access token forces the source to hit the token endpoint.
	source := o.config.TokenSource(o.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, errors.Wrap(err, "whoop token refresh")
	}

	grant := toGrant(token)
	if grant.RefreshToken == "" {
		grant.RefreshToken = refreshToken
	}

	return grant, nil
}

func (o *OAuth) withClient(ctx context.Context) context.Context {
	if o.httpClient == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
}

func toGrant(token *oauth2.Token) *entity.TokenGrant {
	grant := &entity.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}

	switch {
	case token.ExpiresIn > 0:
		grant.ExpiresIn = time.Duration(token.ExpiresIn) * time.Second
	case !token.Expiry.IsZero():
		grant.ExpiresIn = time.Until(token.Expiry)
	}

	if scope, ok := token.Extra("scope").(string); ok {
		grant.Scopes = scope
	}

	return grant
}
