package postgres

import (
	"context"
	"log/slog"

	"shopradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schemaModels lists the tables owned by this service, parents first.
var schemaModels = []any{
	&model.VendorModel{},
	&model.ShopModel{},
}

// shopVendorForeignKeySQL adds shops.vendor_id -> vendors.id unless some
// foreign key between the two tables already exists.
const shopVendorForeignKeySQL = `DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint
		WHERE contype = 'f'
			AND conrelid = 'shops'::regclass
			AND confrelid = 'vendors'::regclass
	) THEN
		ALTER TABLE shops
			ADD CONSTRAINT fk_shops_vendor FOREIGN KEY (vendor_id)
			REFERENCES vendors (id) ON DELETE RESTRICT;
	END IF;
END $$`

// autoMigrate creates or alters the vendors and shops tables to match the models.
func autoMigrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(schemaModels...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	if err := ensureShopVendorForeignKey(ctx, db); err != nil {
		return err
	}

	logger.Info("Database schema migrated", slog.Int("tables", len(schemaModels)))

	return nil
}

func ensureShopVendorForeignKey(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(shopVendorForeignKeySQL).Error; err != nil {
		return errors.Wrap(err, "failed to add shops.vendor_id foreign key")
	}

	return nil
}
