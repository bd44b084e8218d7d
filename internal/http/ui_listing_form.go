package httpx

import (
	"errors"
	"net/http"

	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
	"github.com/seekwell/jobboard/internal/http/validation"
)

func listingFormMeta() PageMeta {
	return PageMeta{Title: "Job Board - New Listing", PageTitle: "Post a Job", CurrentPage: PageListingForm}
}

// NewListingForm renders the empty job posting form.
// GET /listings/new.
func (h *UIHandlers) NewListingForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, NewTemplateData(r, listingFormMeta()).Build())
}

// listingFormValues holds the posted form fields so they survive a re-render.
type listingFormValues struct {
	Title           string
	ExternalPostID  string
	YearsExperience string
	Description     string
}

// CreateListing creates a listing from the posted multipart form.
// POST /listings/new.
func (h *UIHandlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload())
	if err := r.ParseMultipartForm(h.maxUpload()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderListingForm(w, r, listingFormValues{}, map[string]string{
			"logo": "The uploaded file is too large.",
		})
		return
	}

	values := listingFormValues{
		Title:           formValue(r, "title"),
		ExternalPostID:  formValue(r, "external_post_id"),
		YearsExperience: formValue(r, "years_experience"),
		Description:     formValue(r, "description"),
	}

	errs := map[string]string{}
	validation.Apply(errs, "title", values.Title, validation.Required("Title", MaxTitleLength))
	validation.Apply(errs, "external_post_id", values.ExternalPostID, validation.Required("Post ID", MaxFieldLength))
	validation.Apply(errs, "years_experience", values.YearsExperience, validation.Required("Years of experience", MaxFieldLength))
	validation.Apply(errs, "description", values.Description, validation.Required("Description", MaxFieldLength))

	logo, _, err := readFormFile(r, "logo")
	if err != nil {
		errs["logo"] = "Failed to read the uploaded logo."
	}

	if len(errs) > 0 {
		h.renderListingForm(w, r, values, errs)
		return
	}

	_, err = h.ListingSvc.Create(r.Context(), &model.CreateListingRequest{
		Title:           values.Title,
		ExternalPostID:  values.ExternalPostID,
		YearsExperience: values.YearsExperience,
		Description:     values.Description,
		Logo:            logo,
		CreatedBy:       session.Username,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			h.renderListingForm(w, r, values, map[string]string{"title": err.Error()})
			return
		}
		h.logger().ErrorContext(r.Context(), "listing create failed", "error", err)
		h.renderErrorPage(w, r, errorPageParams{
			Status:  http.StatusInternalServerError,
			Title:   "Something Went Wrong",
			Message: "Failed to create the listing. Please try again.",
		})
		return
	}

	http.Redirect(w, r, "/listings", http.StatusSeeOther)
}

func (h *UIHandlers) renderListingForm(w http.ResponseWriter, r *http.Request, values listingFormValues, errs map[string]string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderPage(w, r, NewTemplateData(r, listingFormMeta()).
		WithError(errMsgFixBelow).
		WithFieldErrors(errs).
		With("FormTitle", values.Title).
		With("FormExternalPostID", values.ExternalPostID).
		With("FormYearsExperience", values.YearsExperience).
		With("FormDescription", values.Description).
		Build())
}

// maxUpload returns the configured multipart memory budget with a sane default.
func (h *UIHandlers) maxUpload() int64 {
	const defaultMaxUpload = 5 << 20
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return defaultMaxUpload
}
