package service

import (
	"context"
	"errors"

	"github.com/seekwell/jobboard/internal/core"
	"github.com/seekwell/jobboard/internal/data"
	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
)

// ListingServiceOptions groups dependencies for ListingService.
type ListingServiceOptions struct {
	Listings core.ListingRepository
}

// ListingService orchestrates job listing operations and enforces the
// creator-or-admin delete rule.
type ListingService struct {
	listings core.ListingRepository
}

// NewListingService constructs a new ListingService.
func NewListingService(opts ListingServiceOptions) *ListingService {
	return &ListingService{listings: opts.Listings}
}

// Create creates a listing. All text fields are required; the logo is
// optional and stored as-is.
func (s *ListingService) Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error) {
	if req == nil {
		return nil, apperrors.Validation("listing details are required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.listings.Create(ctx, req)
}

// GetByID retrieves a listing by ID.
func (s *ListingService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrListingNotFound) {
			return nil, apperrors.NotFound("This listing no longer exists.")
		}
		return nil, err
	}
	return listing, nil
}

// List returns every listing in insertion order.
func (s *ListingService) List(ctx context.Context) ([]*model.Listing, error) {
	return s.listings.List(ctx)
}

// Search returns the listings whose title or external post id contains the
// query, case-insensitively. An empty query returns everything.
func (s *ListingService) Search(ctx context.Context, query string) ([]*model.Listing, error) {
	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterListings(listings, query), nil
}

// Delete removes a listing on behalf of the actor. Only the creator or an
// admin may delete; deleting an id that no longer resolves fails with
// NotFound, so a repeated delete of the same listing is an error rather
// than a no-op. Applications against the listing are left in place.
func (s *ListingService) Delete(ctx context.Context, id, actorUsername string, actorRole domainauth.Role) error {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domainauth.CanDelete(listing.CreatedBy, actorUsername, actorRole) {
		return apperrors.Forbidden("Only the listing's creator or an admin can delete it.")
	}

	deleted, err := s.listings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		// Removed between the ownership check and the delete.
		return apperrors.NotFound("This listing no longer exists.")
	}
	return nil
}
