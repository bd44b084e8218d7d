package httpx

import (
	"errors"
	"net/http"

	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
	"github.com/seekwell/jobboard/internal/http/validation"
)

func applyMeta(jobTitle string) PageMeta {
	return PageMeta{Title: "Job Board - Apply", PageTitle: "Apply: " + jobTitle, CurrentPage: PageApply}
}

// ApplyForm renders the application form for a listing.
// GET /listings/{id}/apply.
func (h *UIHandlers) ApplyForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	listing, err := h.ListingSvc.GetByID(r.Context(), id)
	if err != nil {
		h.handleApplyListingError(w, r, id, err)
		return
	}

	h.renderPage(w, r, NewTemplateData(r, applyMeta(listing.Title)).
		With("Listing", listing).
		Build())
}

// applyFormValues holds the posted application fields so they survive a re-render.
type applyFormValues struct {
	Name  string
	Email string
}

// SubmitApplication stores an application with its resume for a listing.
// POST /listings/{id}/apply.
func (h *UIHandlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	listing, err := h.ListingSvc.GetByID(r.Context(), id)
	if err != nil {
		h.handleApplyListingError(w, r, id, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload())
	if err := r.ParseMultipartForm(h.maxUpload()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderApplyForm(w, r, listing, applyFormValues{}, map[string]string{
			"resume": "The uploaded file is too large.",
		})
		return
	}

	values := applyFormValues{
		Name:  formValue(r, "name"),
		Email: formValue(r, "email"),
	}

	errs := map[string]string{}
	validation.Apply(errs, "name", values.Name, validation.Required("Name", MaxFieldLength))
	validation.Apply(errs, "email", values.Email, validation.Required("Email", MaxFieldLength))

	resume, filename, err := readFormFile(r, "resume")
	switch {
	case err != nil:
		errs["resume"] = "Failed to read the uploaded resume."
	case len(resume) == 0:
		errs["resume"] = "A resume file is required."
	case !hasAllowedResumeExtension(filename):
		errs["resume"] = "Resume must be a .pdf, .doc, or .docx file."
	}

	if len(errs) > 0 {
		h.renderApplyForm(w, r, listing, values, errs)
		return
	}

	_, err = h.ApplicationSvc.Submit(r.Context(), &model.SubmitApplicationRequest{
		JobID:          listing.ID,
		ApplicantName:  values.Name,
		ApplicantEmail: values.Email,
		Resume:         resume,
	})
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			h.renderApplyForm(w, r, listing, values, map[string]string{"name": err.Error()})
		case apperrors.IsNotFound(err):
			h.handleApplyListingError(w, r, id, err)
		default:
			h.logger().ErrorContext(r.Context(), "application submit failed", "listing_id", id, "error", err)
			h.renderErrorPage(w, r, errorPageParams{
				Status:  http.StatusInternalServerError,
				Title:   "Something Went Wrong",
				Message: "Failed to submit your application. Please try again.",
			})
		}
		return
	}

	http.Redirect(w, r, "/listings?applied=1", http.StatusSeeOther)
}

func (h *UIHandlers) renderApplyForm(w http.ResponseWriter, r *http.Request, listing *model.Listing, values applyFormValues, errs map[string]string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderPage(w, r, NewTemplateData(r, applyMeta(listing.Title)).
		WithError(errMsgFixBelow).
		WithFieldErrors(errs).
		With("Listing", listing).
		With("FormName", values.Name).
		With("FormEmail", values.Email).
		Build())
}

func (h *UIHandlers) handleApplyListingError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if apperrors.IsNotFound(err) {
		h.renderErrorPage(w, r, errorPageParams{
			Status:  http.StatusNotFound,
			Title:   "Listing Not Found",
			Message: "This listing no longer exists.",
		})
		return
	}
	h.logger().ErrorContext(r.Context(), "listing fetch failed", "listing_id", id, "error", err)
	h.renderErrorPage(w, r, errorPageParams{
		Status:  http.StatusInternalServerError,
		Title:   "Something Went Wrong",
		Message: "Failed to load the listing. Please try again.",
	})
}
