package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"event-booking/cmd"
	"event-booking/internal/data/repository"
	"event-booking/internal/wire"
	"event-booking/pkg/database"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	driver, _ := config.Database.Driver()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("store", driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeDB, err := openRepository(ctx, driver, config.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer closeDB()

	logger.Info("Database connected successfully")

	if err := repos.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		// Fatal exits without running deferred calls
		closeDB()
		logger.Fatal("HTTP server stopped", zap.Error(err))
	}
}

// openRepository connects to the configured store and returns its repositories.
func openRepository(ctx context.Context, driver string, config utils.DatabaseConfig, logger *zap.Logger) (*repository.Repository, func(), error) {
	if driver == utils.DriverPostgres {
		db, err := database.InitPostgres(ctx, config)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresRepository(db, logger), db.Close, nil
	}

	db, err := database.InitMongo(ctx, config)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewMongoRepository(db, logger), db.Close, nil
}
