//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxListingFieldLen = 255

// Listing represents a job posting. Listings are created by an authenticated
// user and never edited; they can only be deleted by their creator or an admin.
type Listing struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ExternalPostID  string    `json:"external_post_id"`
	YearsExperience string    `json:"years_experience"`
	Description     string    `json:"description"`
	Logo            []byte    `json:"-"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasLogo reports whether the listing carries a logo image.
func (l Listing) HasLogo() bool { return len(l.Logo) > 0 }

// CreateListingRequest represents parameters to create a Listing.
// YearsExperience is free text and intentionally not validated as numeric.
type CreateListingRequest struct {
	Title           string
	ExternalPostID  string
	YearsExperience string
	Description     string
	Logo            []byte
	CreatedBy       string
}

// Validate validates CreateListingRequest. Only presence is enforced; the
// logo is optional.
func (r *CreateListingRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.ExternalPostID = strings.TrimSpace(r.ExternalPostID)
	r.YearsExperience = strings.TrimSpace(r.YearsExperience)
	r.Description = strings.TrimSpace(r.Description)

	if r.Title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxListingFieldLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if r.ExternalPostID == "" {
		return errors.New("external post id is required and cannot be empty")
	}
	if r.YearsExperience == "" {
		return errors.New("years of experience is required and cannot be empty")
	}
	if r.Description == "" {
		return errors.New("description is required and cannot be empty")
	}
	if strings.TrimSpace(r.CreatedBy) == "" {
		return errors.New("created_by is required")
	}
	return nil
}
