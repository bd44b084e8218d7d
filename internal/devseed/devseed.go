// Package devseed provisions development-only data at startup.
package devseed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seekwell/jobboard/config"
	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
	"github.com/seekwell/jobboard/internal/service"
)

const adminUsername = "admin"

// Run seeds the development admin account when configured. It is a no-op
// outside dev mode or when no seed password is set, and idempotent when the
// account already exists.
func Run(ctx context.Context, cfg *config.AppConfig, auth *service.AuthService, logger *slog.Logger) error {
	if !cfg.IsDev || cfg.Auth.SeedAdminPassword == "" {
		return nil
	}

	_, err := auth.Register(ctx, &model.RegisterRequest{
		Username: adminUsername,
		Password: cfg.Auth.SeedAdminPassword,
		Role:     domainauth.RoleAdmin,
	})
	switch {
	case err == nil:
		if logger != nil {
			logger.InfoContext(ctx, "seeded dev admin account", "username", adminUsername)
		}
		return nil
	case apperrors.IsConflict(err):
		// Already seeded on a previous start.
		return nil
	default:
		return fmt.Errorf("seed admin account: %w", err)
	}
}
