package httpx

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

// safeRedirectPath ensures post-login redirects stay within the application.
// Anything absolute, host-qualified, or not rooted at "/" collapses to "/".
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}

// formValue returns the trimmed form value for key.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// readFormFile reads the uploaded file for the given form field.
// A missing file or a non-multipart form is not an error; it returns (nil, "", nil).
func readFormFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

// allowedResumeExtensions lists the accepted resume file extensions (lowercase).
//
//nolint:gochecknoglobals // read-only allow-list
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// hasAllowedResumeExtension reports whether the uploaded filename carries an
// accepted resume extension. Matching is case-insensitive.
func hasAllowedResumeExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedResumeExtensions[ext]
}
