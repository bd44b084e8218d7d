package httpx

import (
	"net/http"
	"strconv"

	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
)

// listingRow is the view model for one row of the listings table.
type listingRow struct {
	ID              string
	Title           string
	ExternalPostID  string
	YearsExperience string
	Description     string
	HasLogo         bool
	CreatedBy       string
	CanDelete       bool
}

func listingsMeta() PageMeta {
	return PageMeta{Title: "Job Board - Listings", PageTitle: "Job Listings", CurrentPage: PageListings}
}

// Listings renders the listings page, optionally filtered by the q parameter.
// GET /listings?q=<query>.
func (h *UIHandlers) Listings(w http.ResponseWriter, r *http.Request) {
	query := formValue(r, "q")

	var (
		listings []*model.Listing
		err      error
	)
	if query != "" {
		listings, err = h.ListingSvc.Search(r.Context(), query)
	} else {
		listings, err = h.ListingSvc.List(r.Context())
	}

	builder := NewTemplateData(r, listingsMeta()).With("Query", query)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "listing fetch failed", "error", err)
		builder.WithError("Failed to load job listings. Please try again.")
		h.renderPage(w, r, builder.With("Listings", []listingRow{}).Build())
		return
	}

	session := GetSessionFromContext(r.Context())
	rows := make([]listingRow, 0, len(listings))
	for _, l := range listings {
		row := listingRow{
			ID:              l.ID,
			Title:           l.Title,
			ExternalPostID:  l.ExternalPostID,
			YearsExperience: l.YearsExperience,
			Description:     l.Description,
			HasLogo:         l.HasLogo(),
			CreatedBy:       l.CreatedBy,
		}
		if session != nil {
			row.CanDelete = domainauth.CanDelete(l.CreatedBy, session.Username, session.Role)
		}
		rows = append(rows, row)
	}

	builder.With("Listings", rows)
	if query != "" && len(rows) == 0 {
		builder.With("NoResults", true)
	}
	if r.URL.Query().Get("applied") == "1" {
		builder.With("Applied", true)
	}
	h.renderPage(w, r, builder.Build())
}

// DeleteListing removes a listing owned by the current user (or any listing for admins).
// POST /listings/{id}/delete.
func (h *UIHandlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	id := r.PathValue("id")
	err := h.ListingSvc.Delete(r.Context(), id, session.Username, session.Role)
	switch {
	case err == nil:
		http.Redirect(w, r, "/listings", http.StatusSeeOther)
	case apperrors.IsForbidden(err):
		h.renderErrorPage(w, r, errorPageParams{
			Status:  http.StatusForbidden,
			Title:   "Access Denied",
			Message: "Only the listing's creator or an admin can delete it.",
		})
	case apperrors.IsNotFound(err):
		// Already gone; the listings page reflects the final state either way.
		http.Redirect(w, r, "/listings", http.StatusSeeOther)
	default:
		h.logger().ErrorContext(r.Context(), "listing delete failed", "listing_id", id, "error", err)
		h.renderErrorPage(w, r, errorPageParams{
			Status:  http.StatusInternalServerError,
			Title:   "Something Went Wrong",
			Message: "Failed to delete the listing. Please try again.",
		})
	}
}

// Logo serves the stored company logo for a listing.
// GET /listings/{id}/logo.
func (h *UIHandlers) Logo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	listing, err := h.ListingSvc.GetByID(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		h.logger().ErrorContext(r.Context(), "logo fetch failed", "listing_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !listing.HasLogo() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(listing.Logo))
	w.Header().Set("Content-Length", strconv.Itoa(len(listing.Logo)))
	w.Header().Set("Cache-Control", "private, max-age=300")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(listing.Logo); err != nil {
		// Client went away; nothing else to do.
		return
	}
}
