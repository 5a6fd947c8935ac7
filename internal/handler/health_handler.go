package handler

import (
	"net/http"
	"time"

	"pdf-text-extractor/internal/domain"
)

// HealthHandler serves the health report and the usage documentation
type HealthHandler struct {
	health domain.HealthReader
	now    func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(health domain.HealthReader) *HealthHandler {
	return &HealthHandler{
		health: health,
		now:    time.Now,
	}
}

// Health handles GET /health. An unhealthy monitor is reported in the body;
// the endpoint itself always answers 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.NewHealthResponse(h.health.Snapshot(), h.now()))
}

// Home handles GET / with static usage instructions
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.NewUsageResponse())
}
