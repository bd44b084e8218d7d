package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/seekwell/jobboard/config"
)

// Infrastructure holds the connected external dependencies.
type Infrastructure struct {
	MongoClient *mongo.Client
	DB          *mongo.Database
	RedisClient goredis.UniversalClient
}

// ConnectInfrastructure connects MongoDB and (when enabled) Redis concurrently.
// On any failure, already-established connections are closed before returning.
func ConnectInfrastructure(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Infrastructure, error) {
	dbCfg := DatabaseConfig{
		MongoConfig: cfg.Mongo,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	}

	infra := &Infrastructure{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client, db, err := ConnectMongo(gctx, dbCfg)
		if err != nil {
			return err
		}
		infra.MongoClient = client
		infra.DB = db
		return nil
	})
	g.Go(func() error {
		client, err := ConnectRedis(gctx, dbCfg)
		if err != nil {
			return err
		}
		infra.RedisClient = client
		return nil
	})

	if err := g.Wait(); err != nil {
		infra.Close(ctx, logger)
		return nil, err
	}

	return infra, nil
}

// Close disconnects every connected dependency, logging failures.
func (i *Infrastructure) Close(ctx context.Context, logger *slog.Logger) {
	if i.MongoClient != nil {
		if err := i.MongoClient.Disconnect(ctx); err != nil && logger != nil {
			logger.ErrorContext(ctx, "disconnect mongo failed", "error", err)
		}
	}
	if i.RedisClient != nil {
		if err := i.RedisClient.Close(); err != nil && logger != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", err)
		}
	}
}

// RunConfig bundles everything needed to run the application.
type RunConfig struct {
	Config   *config.AppConfig
	Infra    *Infrastructure
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown starts the HTTP server and blocks until a shutdown signal
// (SIGINT or SIGTERM) arrives, then drains the server gracefully.
func RunWithShutdown(cfg *RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Health:   NewMongoPinger(cfg.Infra.MongoClient),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("start http server: %w", err)
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")

	return ShutdownHTTPServer(context.Background(), server, logger)
}
