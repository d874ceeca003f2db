package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopworks/storefront-admin/src/internal/catalog"
	"github.com/shopworks/storefront-admin/src/internal/store"
)

const maxBodyBytes = 1 << 20

// Options tunes the variant-dependent behavior of the API.
type Options struct {
	// ProtectProductListing puts GET /api/products behind the admin gate.
	ProtectProductListing bool
	// ExposedAllowlist is returned by /api/admin/info when non-nil.
	ExposedAllowlist []string
	CORS             CORSOptions
	// UIDir serves a frontend build for non-API paths when set.
	UIDir string
}

// Handler manages all API endpoints and dependencies.
type Handler struct {
	svc  *catalog.Service
	opts Options
}

// NewHandler creates a new API handler backed by svc.
func NewHandler(svc *catalog.Service, opts Options) *Handler {
	return &Handler{
		svc:  svc,
		opts: opts,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeCollection writes a whole collection with an ETag so pollers can use
// If-None-Match.
func writeCollection(w http.ResponseWriter, r *http.Request, c store.Collection) {
	if sum, err := store.Checksum(c); err == nil {
		etag := `"` + sum + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	writeJSONData(w, c)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
