package core

import (
	"context"

	"github.com/seekwell/jobboard/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user account data operations.
// Users are insert-only; there is no update or delete.
type UserRepository interface {
	Create(ctx context.Context, req *model.RegisterRequest, passwordHash []byte) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// ListingRepository defines the interface for job listing data operations.
// Listings are never updated; they are created once and eventually deleted.
type ListingRepository interface {
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	// List returns every listing in insertion order. There is no pagination;
	// the UI renders the full set on each request.
	List(ctx context.Context) ([]*model.Listing, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ApplicationRepository defines the interface for application data operations.
// Applications are a write-only sink: created once, never read back by the UI.
type ApplicationRepository interface {
	Create(ctx context.Context, req *model.SubmitApplicationRequest, jobTitle string) (*model.Application, error)
	// CountByJobID exists for tests and operational checks only.
	CountByJobID(ctx context.Context, jobID string) (int64, error)
}
