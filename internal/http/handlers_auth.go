package httpx

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	"github.com/seekwell/jobboard/internal/domain/nav"
	apperrors "github.com/seekwell/jobboard/internal/errors"
	"github.com/seekwell/jobboard/internal/http/validation"
	"github.com/seekwell/jobboard/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, username, password string) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// Compile-time assertion that the concrete service satisfies the handler interface.
var _ AuthServiceInterface = (*service.AuthService)(nil)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	T            *TemplateRenderer
	CookieDomain string
	// CookieSecure forces the Secure attribute on the session cookie.
	CookieSecure bool
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginForm renders the login page.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	// Already signed in sessions go straight to the listings page
	if session := getSessionFromRequest(r, h.Svc); session != nil {
		http.Redirect(w, r, nav.PageListings.Path(), http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, NewTemplateData(r, loginMeta()).
		With("RedirectURI", safeRedirectPath(r.URL.Query().Get("redirect_uri"))).
		Build())
}

// Login authenticates a user from the posted form and establishes a session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	username := formValue(r, "username")
	password := r.FormValue("password")
	redirectURI := safeRedirectPath(formValue(r, "redirect_uri"))

	session, err := h.Svc.Login(r.Context(), username, password)
	if err != nil {
		msg := "Invalid username or password."
		if !apperrors.IsUnauthorized(err) {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
			msg = "Sign in is unavailable right now. Please try again."
		}
		w.WriteHeader(http.StatusUnauthorized)
		h.renderLogin(w, r, NewTemplateData(r, loginMeta()).
			WithError(msg).
			With("FormUsername", username).
			With("RedirectURI", redirectURI).
			Build())
		return
	}

	h.setSessionCookie(w, r, session)
	if redirectURI == "/" {
		redirectURI = nav.Next(nav.PageLogin, nav.ActionLoginSuccess, true).Path()
	}
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

// RegisterForm renders the account registration page.
// GET /register.
func (h *AuthHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if session := getSessionFromRequest(r, h.Svc); session != nil {
		http.Redirect(w, r, nav.PageListings.Path(), http.StatusSeeOther)
		return
	}
	h.renderRegister(w, r, NewTemplateData(r, registerMeta()).Build())
}

// Register creates a new account from the posted form and signs the user in.
// POST /register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	username := formValue(r, "username")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	errs := map[string]string{}
	validation.Apply(errs, "username", username, validation.Required("Username", MaxUsernameLength))
	if strings.TrimSpace(password) == "" {
		errs["password"] = "Password is required."
	} else if password != confirm {
		errs["confirm_password"] = "Passwords do not match."
	}
	if len(errs) > 0 {
		h.renderRegisterErrors(w, r, username, errs)
		return
	}

	_, err := h.Svc.Register(r.Context(), &model.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		h.handleRegisterError(w, r, username, err)
		return
	}

	// Sign the new account in right away
	session, err := h.Svc.Login(r.Context(), username, password)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "post-registration login failed", "error", err)
		http.Redirect(w, r, nav.Initial().Path(), http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, r, session)
	http.Redirect(w, r, nav.Next(nav.PageRegister, nav.ActionLoginSuccess, true).Path(), http.StatusSeeOther)
}

func (h *AuthHandlers) handleRegisterError(w http.ResponseWriter, r *http.Request, username string, err error) {
	var appErr *apperrors.AppError
	switch {
	case apperrors.IsConflict(err):
		h.renderRegisterErrors(w, r, username, map[string]string{
			"username": "This username is already taken. Please choose a different one.",
		})
	case apperrors.IsValidation(err) && stderrors.As(err, &appErr):
		key := appErr.Field
		if key == "" {
			key = "username"
		}
		h.renderRegisterErrors(w, r, username, map[string]string{key: appErr.Message})
	default:
		h.logger().ErrorContext(r.Context(), "registration failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		h.renderRegister(w, r, NewTemplateData(r, registerMeta()).
			WithError("Registration is unavailable right now. Please try again.").
			With("FormUsername", username).
			Build())
	}
}

func (h *AuthHandlers) renderRegisterErrors(w http.ResponseWriter, r *http.Request, username string, errs map[string]string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderRegister(w, r, NewTemplateData(r, registerMeta()).
		WithError("Please fix the errors below.").
		WithFieldErrors(errs).
		With("FormUsername", username).
		Build())
}

// Logout invalidates the session and clears the session cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, SessionCookieName)
	http.Redirect(w, r, nav.Next(nav.PageListings, nav.ActionLogout, false).Path(), http.StatusSeeOther)
}

func loginMeta() PageMeta {
	return PageMeta{Title: "Job Board - Sign In", PageTitle: "Sign In", CurrentPage: PageLogin}
}

func registerMeta() PageMeta {
	return PageMeta{Title: "Job Board - Register", PageTitle: "Register", CurrentPage: PageRegister}
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *AuthHandlers) renderRegister(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// setSessionCookie stores the session ID in an HttpOnly cookie whose lifetime
// matches the server-side session expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	isSecure := h.CookieSecure || r.TLS != nil || isForwardedHTTPS(r)
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := h.CookieSecure || r.TLS != nil || isForwardedHTTPS(r)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
