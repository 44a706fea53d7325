package postgres

import (
	"context"
	"log/slog"

	"cortex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or alters every table the sync engine owns.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	logger.InfoContext(ctx, "Database schema migrated", slog.Int("tables", len(models)))

	return nil
}
