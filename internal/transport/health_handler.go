package transport

import (
	"context"
	"net/http"

	"voyager-gear/internal/config"
	"voyager-gear/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// HealthChecker reports the state of a backing store.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type HealthHandler struct {
	app      config.AppConfig
	database HealthChecker
}

func NewHealthHandler(app config.AppConfig, database HealthChecker) *HealthHandler {
	return &HealthHandler{app: app, database: database}
}

func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

// Root identifies the running API
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": h.app.Name,
		"status":  "running",
		"version": h.app.Version,
	})
}

// Health reports 503 when the database does not answer a ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbHealth := h.database.Health(r.Context())

	status, code := "healthy", http.StatusOK
	if dbHealth["status"] != "up" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	middleware.RespondWithJSON(w, code, map[string]interface{}{
		"status":   status,
		"version":  h.app.Version,
		"database": dbHealth,
	})
}
