package service

import (
	"context"
	"errors"

	"github.com/seekwell/jobboard/internal/core"
	"github.com/seekwell/jobboard/internal/data"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Applications core.ApplicationRepository
	Listings     core.ListingRepository
}

// ApplicationService handles application submissions. Applications are a
// write-only sink: nothing in the UI reads them back.
type ApplicationService struct {
	applications core.ApplicationRepository
	listings     core.ListingRepository
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{
		applications: opts.Applications,
		listings:     opts.Listings,
	}
}

// Submit records an application against a listing. The listing must still
// exist at submission time; its title is denormalized into the record, so a
// later delete of the listing leaves the application intact but orphaned.
func (s *ApplicationService) Submit(ctx context.Context, req *model.SubmitApplicationRequest) (*model.Application, error) {
	if req == nil {
		return nil, apperrors.Validation("application details are required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	listing, err := s.listings.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, data.ErrListingNotFound) {
			return nil, apperrors.NotFound("This listing no longer exists.")
		}
		return nil, err
	}

	return s.applications.Create(ctx, req, listing.Title)
}
