package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopworks/storefront-admin/src/internal/catalog"
)

// GetContent returns all content pages.
// GET /api/content
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.ListAll(catalog.CollectionContent)
	if err != nil {
		writeDomainError(w, r, err, "Failed to load content")
		return
	}
	writeCollection(w, r, c)
}

// GetContentPage returns a single content page.
// GET /api/content/{page}
func (h *Handler) GetContentPage(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.GetOne(catalog.CollectionContent, chi.URLParam(r, "page"))
	if err != nil {
		writeDomainError(w, r, err, "Failed to load content")
		return
	}
	writeJSONData(w, record)
}

// SaveContent creates or overwrites a content page.
// POST /api/content
func (h *Handler) SaveContent(w http.ResponseWriter, r *http.Request) {
	var req ContentSaveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	ts, err := h.svc.SaveContent(req.Page, req.Changes, req.Timestamp, callerFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, "Failed to save content")
		return
	}

	writeJSONData(w, ContentSaveResponse{Success: true, Page: req.Page, Timestamp: ts})
}

// DeleteContentPage removes a content page.
// DELETE /api/content/{page}
func (h *Handler) DeleteContentPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	if err := h.svc.Delete(catalog.CollectionContent, page); err != nil {
		writeDomainError(w, r, err, "Failed to delete content")
		return
	}

	writeJSONData(w, DeleteResponse{Success: true, Deleted: page})
}
