package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/config"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// Connect opens a GORM connection to the configured Postgres database,
// retrying while the database comes up. TranslateError turns driver
// constraint failures into gorm sentinel errors for the dberr taxonomy.
func Connect(cfg config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			TranslateError: true,
		})
		if err == nil {
			return db, nil
		}

		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("connect database after %d tries: %w", maxRetries, err)
}

// AutoMigrate reconciles the live schema with the entity definitions,
// adding missing tables and columns and applying column type changes. The
// SQL files under migrations/ are the deploy-time path; this is the dev
// bootstrap.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.User{},
		&models.Product{},
		&models.Quotation{},
		&models.QuotationItem{},
		&models.Subscription{},
		&models.SubscriptionItem{},
		&models.BillingCycle{},
		&models.Payment{},
		&models.WalletAccount{},
		&models.WalletTransaction{},
		&models.EmailLog{},
		&models.WebhookEvent{},
		&models.ProvisioningTask{},
	)
}

// Ping executes a trivial round-trip query, used by the liveness endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
