package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	PageLogin    = "login"
	PageRegister = "register"

	// Listing pages.
	PageListings    = "listings"
	PageListingForm = "listing-form"

	// Application pages.
	PageApply = "apply"
)

const (
	// SessionCookieName is the cookie that carries the session ID.
	SessionCookieName = "session_id"

	// MaxTitleLength bounds the listing title field.
	MaxTitleLength = 255
	// MaxFieldLength bounds the remaining free-text form fields.
	MaxFieldLength = 1024
	// MaxUsernameLength bounds the username field on register/login forms.
	MaxUsernameLength = 64
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "web/templates"       // From project root
	TemplatePathFromTest = "../../web/templates" // From internal/http test files
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageLogin:       "login-content",
	PageRegister:    "register-content",
	PageListings:    "listings-content",
	PageListingForm: "listing-form-content",
	PageApply:       "apply-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to listings-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "listings-content"
}
