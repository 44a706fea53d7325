package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthTokenModel is the GORM-specific struct for the 'oauth_tokens' table.
// Token columns hold keeper ciphertext, never plaintext.
type OAuthTokenModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_oauth_tokens_user_provider"`
	Provider              string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_oauth_tokens_user_provider"`
	AccessTokenEncrypted  string    `gorm:"type:text;not null"`
	RefreshTokenEncrypted string    `gorm:"type:text;not null"`
	TokenType             string    `gorm:"type:varchar(20);not null;default:'Bearer'"`
	Scopes                string    `gorm:"type:text"`
	ExpiresAt             time.Time `gorm:"type:timestamptz;not null"`
	ProviderUserID        *string   `gorm:"type:varchar(100)"`
	Version               int64     `gorm:"not null;default:1"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthTokenModel) TableName() string {
	return "oauth_tokens"
}
