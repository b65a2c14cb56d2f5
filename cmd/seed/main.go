// Seeds the database with a demo user and a handful of ledger entries so
// the assistant has context to talk about on a fresh install. Running it
// twice is a no-op: tables that already hold data are left alone.
package main

import (
	"context"
	"log"
	"time"

	"moneyflow/internal/models"
	"moneyflow/internal/repository"
	"moneyflow/pkg/config"
	"moneyflow/pkg/logger"
	"moneyflow/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	appLogger.Info("Starting database seeding...")

	entryRepo := repository.NewEntryRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)

	if err := seedUsers(ctx, userRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed users", zap.Error(err))
	}
	if err := seedEntries(ctx, entryRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed entries", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedUsers(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Users already present, skipping", zap.Int("count", len(existing)))
		return nil
	}

	demo := &models.User{
		Username: "demo",
		Email:    "demo@moneyflow.local",
	}
	if err := repo.Create(ctx, demo); err != nil {
		return err
	}

	logger.Info("Seeded demo user", zap.Int64("id", demo.ID))
	return nil
}

func seedEntries(ctx context.Context, repo *repository.EntryRepository, logger *zap.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Entries already present, skipping", zap.Int("count", len(existing)))
		return nil
	}

	monthStart := time.Now().UTC().AddDate(0, 0, -27)
	groceriesNotes := "Weekly groceries"
	samples := []*models.Entry{
		{Type: models.EntryTypeIncome, Amount: 3200, Category: "Salary", Date: monthStart},
		{Type: models.EntryTypeExpense, Amount: 950, Category: "Rent", Date: monthStart.AddDate(0, 0, 1)},
		{Type: models.EntryTypeExpense, Amount: 86.40, Category: "Food", Notes: &groceriesNotes, Date: monthStart.AddDate(0, 0, 3)},
		{Type: models.EntryTypeExpense, Amount: 49.99, Category: "Entertainment", Date: monthStart.AddDate(0, 0, 10)},
		{Type: models.EntryTypeIncome, Amount: 150, Category: "Freelance", Date: monthStart.AddDate(0, 0, 15)},
	}

	for _, e := range samples {
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
	}

	logger.Info("Seeded entries", zap.Int("count", len(samples)))
	return nil
}
