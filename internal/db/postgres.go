package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
	"github.com/zeon9405/unikraft/internal/platform/envutil"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := envutil.Str("POSTGRES_HOST", "localhost")
	postgresPort := envutil.Str("POSTGRES_PORT", "5432")
	postgresUser := envutil.Str("POSTGRES_USER", "postgres")
	postgresPassword := envutil.Str("POSTGRES_PASSWORD", "")
	postgresName := envutil.Str("POSTGRES_NAME", "shop")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Member{},
		&types.ProductCategory{},
		&types.Product{},
		&types.Cart{},
		&types.CartItem{},
		&types.Order{},
		&types.OrderItem{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		ddl  string
	}{
		// Cart rows go with their member; orders are kept for bookkeeping
		// so member deletion is handled at the service layer, not here.
		{"fk_cart_member_id", `
			ALTER TABLE "cart"
			ADD CONSTRAINT "fk_cart_member_id"
			FOREIGN KEY ("member_id")
			REFERENCES "member"("id")
			ON DELETE CASCADE`},
		{"fk_cart_item_cart_id", `
			ALTER TABLE "cart_item"
			ADD CONSTRAINT "fk_cart_item_cart_id"
			FOREIGN KEY ("cart_id")
			REFERENCES "cart"("id")
			ON DELETE CASCADE`},
		{"fk_cart_item_product_id", `
			ALTER TABLE "cart_item"
			ADD CONSTRAINT "fk_cart_item_product_id"
			FOREIGN KEY ("product_id")
			REFERENCES "product"("id")
			ON DELETE RESTRICT`},
		{"fk_product_category_id", `
			ALTER TABLE "product"
			ADD CONSTRAINT "fk_product_category_id"
			FOREIGN KEY ("category_id")
			REFERENCES "product_category"("id")
			ON DELETE RESTRICT`},
		{"fk_order_item_order_id", `
			ALTER TABLE "order_item"
			ADD CONSTRAINT "fk_order_item_order_id"
			FOREIGN KEY ("order_id")
			REFERENCES "orders"("id")
			ON DELETE CASCADE`},
		{"fk_order_item_product_id", `
			ALTER TABLE "order_item"
			ADD CONSTRAINT "fk_order_item_product_id"
			FOREIGN KEY ("product_id")
			REFERENCES "product"("id")
			ON DELETE RESTRICT`},
	}
	for _, c := range constraints {
		exists := int64(0)
		if err := s.db.Raw(
			`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, c.name,
		).Scan(&exists).Error; err != nil {
			return fmt.Errorf("check constraint %s: %w", c.name, err)
		}
		if exists > 0 {
			continue
		}
		if err := s.db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
