package handlers

import (
	"context"
	"log"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	ping func(context.Context) error
}

// NewHealthHandler takes the store liveness check; nil means the store was
// never connected.
func NewHealthHandler(ping func(context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// --- GET / ---

// Home answers regardless of store connectivity.
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Career Compass Backend is Running!",
		"status":  "success",
	})
}

// --- GET /health ---

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "disconnected"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		log.Printf("Health check ping failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "disconnected"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "connected"})
}
