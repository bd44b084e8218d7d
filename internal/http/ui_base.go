package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	"github.com/seekwell/jobboard/internal/domain/nav"
	"github.com/seekwell/jobboard/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// ListingsService is a minimal interface for UI needs.
type ListingsService interface {
	List(ctx context.Context) ([]*model.Listing, error)
	Search(ctx context.Context, query string) ([]*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error)
	Delete(ctx context.Context, id, actorUsername string, actorRole domainauth.Role) error
}

// ApplicationsService is a minimal interface for UI needs.
type ApplicationsService interface {
	Submit(ctx context.Context, req *model.SubmitApplicationRequest) (*model.Application, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ ListingsService     = (*service.ListingService)(nil)
	_ ApplicationsService = (*service.ApplicationService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T              *TemplateRenderer
	ListingSvc     ListingsService
	ApplicationSvc ApplicationsService
	MaxUploadBytes int64
	IsDev          bool // Development mode flag for enhanced error reporting
	Logger         *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// renderPage renders a full page and falls back to a plain 500 when the
// template itself fails.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.logger().ErrorContext(r.Context(), "page render failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// errorPageParams groups the fields needed to render the error page.
type errorPageParams struct {
	Status  int
	Title   string
	Message string
}

// renderErrorPage renders the standalone error layout with the given status.
func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, p errorPageParams) {
	data := NewTemplateData(r, PageMeta{Title: "Job Board - " + p.Title, PageTitle: p.Title}).
		With("Status", p.Status).
		With("Message", p.Message).
		Build()

	w.WriteHeader(p.Status)
	if err := h.T.RenderError(w, r, data); err != nil {
		http.Error(w, p.Message, p.Status)
	}
}

// NotFound renders the 404 page for unmatched routes.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderErrorPage(w, r, errorPageParams{
		Status:  http.StatusNotFound,
		Title:   "Page Not Found",
		Message: "The page you are looking for does not exist.",
	})
}

// Home redirects the root path to the listings page.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, nav.PageListings.Path(), http.StatusSeeOther)
}
