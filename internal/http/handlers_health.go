package httpx

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	healthOKResponse   = `{"status":"ok"}`
	healthFailResponse = `{"status":"unavailable"}`
	healthPingTimeout  = 2 * time.Second
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves readiness/liveness checks, optionally pinging the store.
type HealthHandler struct {
	Store Pinger
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			if r.Method != http.MethodHead {
				_, _ = io.WriteString(w, healthFailResponse)
			}
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthOKResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
