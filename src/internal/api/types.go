package api

import (
	"github.com/shopworks/storefront-admin/src/internal/models"
)

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // seconds
}

// AdminStatusResponse is returned by GET /api/admin/status.
type AdminStatusResponse struct {
	Authorized bool   `json:"authorized"`
	IP         string `json:"ip"`
	Timestamp  string `json:"timestamp"`
}

// ContentSaveRequest is the body of POST /api/content.
type ContentSaveRequest struct {
	Page    string                 `json:"page"`
	Changes map[string]interface{} `json:"changes"`
	// Timestamp overrides lastModified when set.
	Timestamp string `json:"timestamp,omitempty"`
}

// ContentSaveResponse is returned by POST /api/content.
type ContentSaveResponse struct {
	Success   bool   `json:"success"`
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

// ProductCreateRequest is the body of POST /api/products.
type ProductCreateRequest struct {
	ProductID   string          `json:"productId"`
	ProductData *models.Product `json:"productData"`
}

// ProductSaveResponse is returned by POST /api/products and PUT /api/products/{id}.
type ProductSaveResponse struct {
	Success   bool   `json:"success"`
	ProductID string `json:"productId"`
	Timestamp string `json:"timestamp"`
}

// DeleteResponse is returned by delete endpoints.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Deleted string `json:"deleted"`
}

// ResetRequest is the body of POST /api/reset.
type ResetRequest struct {
	Type string `json:"type"` // "content", "products", "all"
}

// ResetResponse is returned by POST /api/reset.
type ResetResponse struct {
	Success bool   `json:"success"`
	Reset   string `json:"reset"`
}

// AdminInfoResponse is returned by GET /api/admin/info.
type AdminInfoResponse struct {
	ContentPages  int     `json:"contentPages"`
	TotalProducts int     `json:"totalProducts"`
	LastActivity  *string `json:"lastActivity"`
	ServerUptime  float64 `json:"serverUptime"` // seconds
	// AllowedIPs is only present when expose_allowlist is enabled.
	AllowedIPs []string `json:"allowedIPs,omitempty"`
}
