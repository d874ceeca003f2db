package api

import (
	"net/http"

	"github.com/shopworks/storefront-admin/src/internal/models"
)

// CheckHealth reports liveness.
// GET /api/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, HealthResponse{
		Status:    "OK",
		Timestamp: models.FormatTime(h.svc.Now()),
		Uptime:    h.svc.Uptime().Seconds(),
	})
}

// GetTimestamps returns the latest modification per collection.
// GET /api/timestamps
func (h *Handler) GetTimestamps(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.Timestamps()
	if err != nil {
		writeDomainError(w, r, err, "Failed to get timestamps")
		return
	}
	writeJSONData(w, ts)
}
