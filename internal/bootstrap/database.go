package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/seekwell/jobboard/config"
	"github.com/seekwell/jobboard/internal/data"
)

const connectTimeout = 5 * time.Second

// DatabaseConfig contains configuration for datastore connections.
type DatabaseConfig struct {
	MongoConfig config.MongoConfig
	RedisConfig config.RedisConfig
	Logger      *slog.Logger
}

// ConnectMongo establishes a connection to MongoDB and returns the application
// database handle. The client is verified with a ping before use.
func ConnectMongo(ctx context.Context, cfg DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoConfig.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if pingErr := client.Ping(connectCtx, readpref.Primary()); pingErr != nil {
		if closeErr := client.Disconnect(ctx); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("disconnect mongo: %w", closeErr))
		}
		return nil, nil, fmt.Errorf("ping mongo: %w", pingErr)
	}

	db := client.Database(cfg.MongoConfig.Database)

	if cfg.MongoConfig.EnsureIndexesOnStart {
		if err := ensureIndexes(ctx, db); err != nil {
			if closeErr := client.Disconnect(ctx); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("disconnect mongo: %w", closeErr))
			}
			return nil, nil, err
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("mongo connected", "database", cfg.MongoConfig.Database)
	}

	return client, db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := data.NewUserRepo(db).EnsureIndexes(indexCtx); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

// ConnectRedis establishes a connection to Redis for session storage.
// Returns nil without error when Redis is disabled in configuration.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support open.
func ConnectRedis(ctx context.Context, cfg DatabaseConfig) (redis.UniversalClient, error) {
	if !cfg.RedisConfig.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Addr,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("redis connected", "addr", cfg.RedisConfig.Addr)
	}

	return client, nil
}

// mongoPinger adapts a mongo client to the health check interface.
type mongoPinger struct {
	client *mongo.Client
}

// NewMongoPinger wraps the client for /healthz store checks.
func NewMongoPinger(client *mongo.Client) *mongoPinger { //nolint:revive // unexported return is deliberate; callers only need Ping
	return &mongoPinger{client: client}
}

func (p *mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
