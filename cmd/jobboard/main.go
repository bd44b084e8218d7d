package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/seekwell/jobboard/config"
	"github.com/seekwell/jobboard/internal/bootstrap"
	"github.com/seekwell/jobboard/internal/devseed"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger(os.Getenv("LOG_LEVEL"))
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	cfgPtr := &cfg

	logStartupInfo(ctx, logger, cfgPtr)

	infra, err := bootstrap.ConnectInfrastructure(ctx, cfgPtr, logger)
	if err != nil {
		return fmt.Errorf("connect infrastructure: %w", err)
	}
	defer infra.Close(ctx, logger)

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:      cfgPtr,
		DB:          infra.DB,
		RedisClient: infra.RedisClient,
		Logger:      logger,
	})

	if err = devseed.Run(ctx, cfgPtr, services.Auth, logger); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	return bootstrap.RunWithShutdown(&bootstrap.RunConfig{
		Config:   cfgPtr,
		Infra:    infra,
		Services: services,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting jobboard service",
		"addr", cfg.HTTP.Addr,
		"mongo_database", cfg.Mongo.Database,
		"redis_sessions", cfg.Redis.Enabled,
		"dev_mode", cfg.IsDev)
}
