package postgres

import (
	"context"

	"shopbot/internal/errors"
	"shopbot/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.MessageModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.ProductModel{},
	}
}

// Migrate creates or updates the schema. On Postgres it also enables pg_trgm
// so catalog matching can use similarity scoring.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if db.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS " + trigramExtension).Error; err != nil {
			return errors.Wrap(err, "failed to enable pg_trgm")
		}
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
