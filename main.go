// main.go
package main

import (
	"context"
	"fmt"
	"log"

	"delivery-backend/cmd"
	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/data/repository/memory"
	"delivery-backend/internal/migrate"
	"delivery-backend/internal/seed"
	"delivery-backend/internal/wire"
	"delivery-backend/pkg/database"
	"delivery-backend/pkg/notify"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	repos, closeStore, err := openRepository(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeStore()

	if err := seed.Seed(ctx, repos.Catalog, config.Seed.DataDir, logger); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	notifier := notify.New(config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, notifier, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server exited", zap.Error(err))
	}
}

// openRepository connects the configured storage backend. The returned
// func releases it.
func openRepository(ctx context.Context, config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	switch config.Database.Driver {
	case utils.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepository(), func() {}, nil

	case utils.StoragePostgres, "":
		if config.Database.AutoMigrate {
			if err := migrate.Apply(ctx, database.DSN(config.Database)); err != nil {
				return nil, nil, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("Database migrations applied")
		}

		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		logger.Info("Database connected successfully")

		return repository.NewRepository(db, logger), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", config.Database.Driver)
	}
}
