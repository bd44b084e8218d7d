package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://jobs.example.com").
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// CookieSecure marks session and CSRF cookies Secure. Enable behind TLS.
	CookieSecure bool `env:"APP_COOKIE_SECURE" envDefault:"false"`

	// MaxUploadBytes caps multipart uploads (logo and resume files).
	MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" envDefault:"5242880"`
}

const (
	minUploadBytes = 1 << 10  // 1 KiB
	maxUploadBytes = 32 << 20 // 32 MiB
)

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.MaxUploadBytes < minUploadBytes {
		h.MaxUploadBytes = minUploadBytes
	}
	if h.MaxUploadBytes > maxUploadBytes {
		h.MaxUploadBytes = maxUploadBytes
	}
}
