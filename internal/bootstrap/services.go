package bootstrap

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seekwell/jobboard/config"
	"github.com/seekwell/jobboard/internal/adapters/memstore"
	redisadapter "github.com/seekwell/jobboard/internal/adapters/redis"
	"github.com/seekwell/jobboard/internal/data"
	"github.com/seekwell/jobboard/internal/ports"
	"github.com/seekwell/jobboard/internal/service"
)

// ServiceDeps bundles the external dependencies services are built from.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *mongo.Database
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds all constructed application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	Listings     *service.ListingService
	Applications *service.ApplicationService
}

// NewServices wires repositories, the session store, and services together.
func NewServices(deps *ServiceDeps) ServiceContainer {
	userRepo := data.NewUserRepo(deps.DB)
	listingRepo := data.NewListingRepo(deps.DB)
	applicationRepo := data.NewApplicationRepo(deps.DB)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Users:      userRepo,
		Sessions:   newSessionStore(deps),
		SessionTTL: deps.Config.Auth.SessionTTL,
		BcryptCost: deps.Config.Auth.BcryptCost,
	})

	listingSvc := service.NewListingService(service.ListingServiceOptions{
		Listings: listingRepo,
	})

	applicationSvc := service.NewApplicationService(service.ApplicationServiceOptions{
		Applications: applicationRepo,
		Listings:     listingRepo,
	})

	return ServiceContainer{
		Auth:         authSvc,
		Listings:     listingSvc,
		Applications: applicationSvc,
	}
}

// newSessionStore picks the configured session backend. The Redis backend
// requires a connected client; without one we fall back to in-memory sessions.
//
//nolint:ireturn // the two backends share only the port interface.
func newSessionStore(deps *ServiceDeps) ports.SessionStore {
	if deps.Config.Auth.SessionBackend == config.SessionBackendRedis && deps.RedisClient != nil {
		return redisadapter.NewSessionStore(deps.RedisClient)
	}
	if deps.Config.Auth.SessionBackend == config.SessionBackendRedis && deps.Logger != nil {
		deps.Logger.Warn("redis session backend configured but redis is not connected, using memory store")
	}
	return memstore.NewSessionStore()
}
