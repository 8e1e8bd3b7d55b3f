package migrate

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	CreateChecks           bool // CHECK constraints (postgres)
	CreateUpdatedAtTrigger bool // updated_at trigger on orders (postgres)
}

func DefaultOptions() Options {
	return Options{
		CreateChecks:           true,
		CreateUpdatedAtTrigger: true,
	}
}

// Run creates the schema and seeds the order counter row. The postgres-only
// statements are gated by Options so the same tables can be built on sqlite
// in tests.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, opt Options) error {
	log.Info("migrating storefront schema")

	if err := db.WithContext(ctx).AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderCounter{},
		&models.ContactMessage{},
	); err != nil {
		log.Error("automigrate failed", zap.Error(err))
		return err
	}

	if err := SeedOrderCounter(ctx, db); err != nil {
		log.Error("seeding order counter failed", zap.Error(err))
		return err
	}

	if opt.CreateChecks {
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_status;
ALTER TABLE orders ADD CONSTRAINT chk_orders_status
  CHECK (status IN ('confirmado','preparando','pronto','finalizado','recusado'));
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_totals;
ALTER TABLE orders ADD CONSTRAINT chk_orders_totals
  CHECK (subtotal_cents >= 0 AND shipping_cents >= 0 AND total_cents >= 0);
`).Error; err != nil {
			log.Error("creating check constraints failed", zap.Error(err))
			return err
		}
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("creating updated_at trigger failed", zap.Error(err))
			return err
		}
	}

	log.Info("migration finished")
	return nil
}

// SeedOrderCounter makes sure the single counter row exists. Counter 0
// means the next issued number is 00001.
func SeedOrderCounter(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Where(models.OrderCounter{ID: 1}).
		FirstOrCreate(&models.OrderCounter{ID: 1, Counter: 0}).Error
}

// SeedAdmin creates the admin account when it does not exist yet. Used by
// cmd/migrate when ADMIN_EMAIL is configured.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, passwordHash, name string) error {
	var cnt int64
	if err := db.WithContext(ctx).Model(&models.Customer{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&models.Customer{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         models.RoleAdmin,
	}).Error
}
