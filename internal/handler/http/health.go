package http

import (
	"net/http"
	"time"

	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/handler/http/respond"
	"negative-mentions/internal/session"
)

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Sessions int    `json:"sessions"`
}

// HealthHandler returns an HTTP handler for health checks.
// The service holds no external dependencies, so health reduces to the
// process being able to serve and its catalog being usable.
func HealthHandler(catalog entity.Catalog, store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := HealthStatus{
			Status:   "ok",
			Time:     time.Now().UTC().Format(time.RFC3339),
			Sessions: store.Len(),
		}
		code := http.StatusOK
		if err := catalog.Validate(); err != nil {
			status.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
		respond.JSON(w, code, status)
	}
}

// ReadyHandler returns an HTTP handler for readiness checks.
func ReadyHandler(catalog entity.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := catalog.Validate(); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// LiveHandler returns an HTTP handler for liveness checks.
func LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
	}
}
