package httpx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	jobboard "github.com/seekwell/jobboard"
	"github.com/seekwell/jobboard/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Listings     *service.ListingService
	Applications *service.ApplicationService
	// Optional: store reachability check for /healthz
	Health Pinger
	// Configuration
	CookieDomain string
	// CookieSecure forces the Secure attribute on session and CSRF cookies.
	// Without it the attribute follows TLS / X-Forwarded-Proto detection.
	CookieSecure   bool
	MaxUploadBytes int64
	IsDev          bool         // Development mode flag for disk-based templates, etc.
	Logger         *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) (http.Handler, error) {
	tr, err := newRouterRenderer(services)
	if err != nil {
		return nil, err
	}

	uiHandlers := &UIHandlers{
		T:              tr,
		ListingSvc:     services.Listings,
		ApplicationSvc: services.Applications,
		MaxUploadBytes: services.MaxUploadBytes,
		IsDev:          services.IsDev,
		Logger:         services.Logger,
	}
	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		T:            tr,
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
		Logger:       services.Logger,
	}

	mux := http.NewServeMux()
	registerAuthRoutes(mux, authHandlers)
	registerListingRoutes(mux, uiHandlers, services.Auth)
	mux.Handle("GET /healthz", &HealthHandler{Store: services.Health})
	mux.Handle("HEAD /healthz", &HealthHandler{Store: services.Health})

	mux.HandleFunc("GET /{$}", uiHandlers.Home)
	mux.HandleFunc("/", uiHandlers.NotFound)

	// Outermost first: recover, then logging, CSRF, and session resolution.
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var handler http.Handler = mux
	handler = SessionContext(services.Auth)(handler)
	handler = CSRFProtection(CSRFConfig{
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
		MaxBodyBytes: services.MaxUploadBytes,
	})(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

// newRouterRenderer builds the template renderer for the router.
// In dev mode templates are read from disk so edits show up on restart;
// in production they come from the embedded filesystem.
func newRouterRenderer(services RouterServices) (*TemplateRenderer, error) {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS(TemplatePathFromRoot)
	} else {
		sub, err := fs.Sub(jobboard.TemplateFS, "web/templates")
		if err != nil {
			return nil, fmt.Errorf("embedded templates: %w", err)
		}
		templateFS = sub
	}

	return NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /register", h.RegisterForm)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /logout", h.Logout)
}

func registerListingRoutes(mux *http.ServeMux, h *UIHandlers, authSvc AuthServiceInterface) {
	requireAuth := RequireAuth(authSvc)

	// Viewing and searching listings is public; logos are fetched by the
	// listings page itself.
	mux.HandleFunc("GET /listings", h.Listings)
	mux.HandleFunc("GET /listings/{id}/logo", h.Logo)
	mux.HandleFunc("HEAD /listings/{id}/logo", h.Logo)

	mux.Handle("GET /listings/new", requireAuth(http.HandlerFunc(h.NewListingForm)))
	mux.Handle("POST /listings/new", requireAuth(http.HandlerFunc(h.CreateListing)))
	mux.Handle("POST /listings/{id}/delete", requireAuth(http.HandlerFunc(h.DeleteListing)))
	mux.Handle("GET /listings/{id}/apply", requireAuth(http.HandlerFunc(h.ApplyForm)))
	mux.Handle("POST /listings/{id}/apply", requireAuth(http.HandlerFunc(h.SubmitApplication)))
}
