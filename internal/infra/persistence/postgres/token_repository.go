package postgres

import (
	"context"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"
	"cortex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements repository.TokenRepository. Both token columns are sealed
// with the cipher on write and opened on read.
type tokenRepository struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB, cipher service.TokenCipher) repository.TokenRepository {
	return &tokenRepository{
		db:     db,
		cipher: cipher,
	}
}

func (repo *tokenRepository) Find(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.OAuthToken, error) {
	var tokenM model.OAuthTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find oauth token")
	}

	return repo.toTokenDomain(ctx, &tokenM)
}

// Upsert inserts or replaces the credential and bumps its version.
func (repo *tokenRepository) Upsert(ctx context.Context, token *entity.OAuthToken) error {
	tokenM, err := repo.fromTokenDomain(ctx, token)
	if err != nil {
		return err
	}
	tokenM.Version = 1

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.Assignments(map[string]any{
				"access_token_encrypted":  tokenM.AccessTokenEncrypted,
				"refresh_token_encrypted": tokenM.RefreshTokenEncrypted,
				"token_type":              tokenM.TokenType,
				"scopes":                  tokenM.Scopes,
				"expires_at":              tokenM.ExpiresAt,
				"provider_user_id":        tokenM.ProviderUserID,
				"version":                 gorm.Expr("oauth_tokens.version + 1"),
				"updated_at":              time.Now(),
			}),
		}).
		Create(tokenM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert oauth token")
	}

	return nil
}

// UpdateIfVersion is a compare-and-swap on the version column.
func (repo *tokenRepository) UpdateIfVersion(ctx context.Context, token *entity.OAuthToken, expectedVersion int64) (bool, error) {
	accessEnc, err := repo.cipher.Encrypt(ctx, token.AccessToken)
	if err != nil {
		return false, domainerrors.ErrTokenEncryptionFailed.WrapMessage(err.Error())
	}
	refreshEnc, err := repo.cipher.Encrypt(ctx, token.RefreshToken)
	if err != nil {
		return false, domainerrors.ErrTokenEncryptionFailed.WrapMessage(err.Error())
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OAuthTokenModel{}).
		Where("user_id = ? AND provider = ? AND version = ?", token.UserID, token.Provider.String(), expectedVersion).
		Updates(map[string]any{
			"access_token_encrypted":  accessEnc,
			"refresh_token_encrypted": refreshEnc,
			"expires_at":              token.ExpiresAt,
			"version":                 expectedVersion + 1,
			"updated_at":              time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update oauth token")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	token.Version = expectedVersion + 1

	return true, nil
}

func (repo *tokenRepository) Delete(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Delete(&model.OAuthTokenModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete oauth token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

func (repo *tokenRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OAuthToken, error) {
	var tokenModels []*model.OAuthTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("provider ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list oauth tokens")
	}

	tokens := make([]*entity.OAuthToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		token, err := repo.toTokenDomain(ctx, tokenM)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// ListConnected reads only the key columns, so it never touches ciphertext.
func (repo *tokenRepository) ListConnected(ctx context.Context) ([]entity.UserProvider, error) {
	var rows []struct {
		UserID   uuid.UUID
		Provider string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OAuthTokenModel{}).
		Select("user_id", "provider").
		Order("user_id ASC, provider ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list connected providers")
	}

	pairs := make([]entity.UserProvider, 0, len(rows))
	for _, row := range rows {
		provider, err := entity.ParseProvider(row.Provider)
		if err != nil {
			continue
		}
		pairs = append(pairs, entity.UserProvider{UserID: row.UserID, Provider: provider})
	}

	return pairs, nil
}

// --- Mapper Functions ---

func (repo *tokenRepository) toTokenDomain(ctx context.Context, data *model.OAuthTokenModel) (*entity.OAuthToken, error) {
	provider, err := entity.ParseProvider(data.Provider)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	accessToken, err := repo.cipher.Decrypt(ctx, data.AccessTokenEncrypted)
	if err != nil {
		return nil, domainerrors.ErrTokenEncryptionFailed.WrapMessage(err.Error())
	}
	refreshToken, err := repo.cipher.Decrypt(ctx, data.RefreshTokenEncrypted)
	if err != nil {
		return nil, domainerrors.ErrTokenEncryptionFailed.WrapMessage(err.Error())
	}

	token := &entity.OAuthToken{
		ID:           data.ID,
		UserID:       data.UserID,
		Provider:     provider,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    data.TokenType,
		Scopes:       data.Scopes,
		ExpiresAt:    data.ExpiresAt,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.ProviderUserID != nil {
		token.ProviderUserID = *data.ProviderUserID
	}

	return token, nil
}

func (repo *tokenRepository) fromTokenDomain(ctx context.Context, token *entity.OAuthToken) (*model.OAuthTokenModel, error) {
	accessEnc, err := repo.cipher.Encrypt(ctx, token.AccessToken)
	if err != nil {
		return nil, domainerrors.ErrTokenEncryptionFailed.WrapMessage(err.Error())
	}
	refreshEnc, err := repo.cipher.Encrypt(ctx, token.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenEncryptionFailed.WrapMessage(err.Error())
	}

	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	tokenM := &model.OAuthTokenModel{
		ID:                    token.ID,
		UserID:                token.UserID,
		Provider:              token.Provider.String(),
		AccessTokenEncrypted:  accessEnc,
		RefreshTokenEncrypted: refreshEnc,
		TokenType:             tokenType,
		Scopes:                token.Scopes,
		ExpiresAt:             token.ExpiresAt,
		Version:               token.Version,
	}
	if token.ProviderUserID != "" {
		tokenM.ProviderUserID = &token.ProviderUserID
	}

	return tokenM, nil
}
