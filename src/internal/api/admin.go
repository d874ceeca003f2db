package api

import (
	"net/http"

	"github.com/shopworks/storefront-admin/src/internal/models"
)

// GetAdminStatus confirms the caller passed the admin gate.
// GET /api/admin/status
func (h *Handler) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, AdminStatusResponse{
		Authorized: true,
		IP:         callerFromContext(r.Context()),
		Timestamp:  models.FormatTime(h.svc.Now()),
	})
}

// GetAdminInfo returns collection counts and uptime.
// GET /api/admin/info
func (h *Handler) GetAdminInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Info()
	if err != nil {
		writeDomainError(w, r, err, "Failed to get admin info")
		return
	}

	writeJSONData(w, AdminInfoResponse{
		ContentPages:  info.ContentPages,
		TotalProducts: info.TotalProducts,
		LastActivity:  info.LastActivity,
		ServerUptime:  info.Uptime.Seconds(),
		AllowedIPs:    h.opts.ExposedAllowlist,
	})
}

// Reset empties one or both collections.
// POST /api/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	if err := h.svc.Reset(req.Type); err != nil {
		writeDomainError(w, r, err, "Failed to reset data")
		return
	}

	writeJSONData(w, ResetResponse{Success: true, Reset: req.Type})
}
