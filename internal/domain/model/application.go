//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Application represents a candidate's submission against a Listing.
// JobTitle is a denormalized copy of the listing title at submission time;
// deleting a listing leaves its applications in place.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	Resume         []byte    `json:"-"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// SubmitApplicationRequest represents parameters to submit an Application.
type SubmitApplicationRequest struct {
	JobID          string
	ApplicantName  string
	ApplicantEmail string
	Resume         []byte
}

// Validate validates SubmitApplicationRequest. Email format is not checked,
// only presence.
func (r *SubmitApplicationRequest) Validate() error {
	r.JobID = strings.TrimSpace(r.JobID)
	r.ApplicantName = strings.TrimSpace(r.ApplicantName)
	r.ApplicantEmail = strings.TrimSpace(r.ApplicantEmail)

	if r.JobID == "" {
		return errors.New("job id is required")
	}
	if r.ApplicantName == "" {
		return errors.New("name is required and cannot be empty")
	}
	if r.ApplicantEmail == "" {
		return errors.New("email is required and cannot be empty")
	}
	if len(r.Resume) == 0 {
		return errors.New("resume is required")
	}
	return nil
}
