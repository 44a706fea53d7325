// Package secrets encrypts provider credentials before they are persisted.
package secrets

import (
	"context"
	"encoding/base64"
	"log/slog"

	"cortex/config"
	"cortex/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/localsecrets"
)

// Cipher implements service.TokenCipher on a gocloud secrets keeper.
// Ciphertext is stored base64 encoded so it fits a text column.
type Cipher struct {
	keeper *secrets.Keeper
}

// KeeperParams holds dependencies for the token cipher, injected by Fx
type KeeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenCipher opens the configured keeper and closes it on shutdown.
func NewTokenCipher(params KeeperParams) (service.TokenCipher, error) {
	if params.Config.Secrets == nil || params.Config.Secrets.KeeperURL == "" {
		return nil, errors.New("secrets keeper URL is required")
	}

	cipher, err := Open(params.Ctx, params.Config.Secrets.KeeperURL)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing secrets keeper")

			return cipher.Close()
		},
	})

	return cipher, nil
}

// Open builds a cipher from a keeper URL such as base64key://... or gcpkms://...
func Open(ctx context.Context, keeperURL string) (*Cipher, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "open secrets keeper")
	}

	return &Cipher{keeper: keeper}, nil
}

func (c *Cipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	sealed, err := c.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", errors.Wrap(err, "encrypt secret")
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "decode ciphertext")
	}

	plain, err := c.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", errors.Wrap(err, "decrypt secret")
	}

	return string(plain), nil
}

func (c *Cipher) Close() error {
	return errors.WithStack(c.keeper.Close())
}

// Module provides the token cipher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenCipher),
)
