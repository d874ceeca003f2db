package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopworks/storefront-admin/src/internal/catalog"
	"github.com/shopworks/storefront-admin/src/internal/models"
)

// GetProducts returns the full product mapping.
// GET /api/products
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.ListAll(catalog.CollectionProducts)
	if err != nil {
		writeDomainError(w, r, err, "Failed to load products")
		return
	}
	writeCollection(w, r, c)
}

// ListPublicProducts returns the public projection of every product.
// GET /api/products/list
func (h *Handler) ListPublicProducts(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListPublicProducts()
	if err != nil {
		writeDomainError(w, r, err, "Failed to load products")
		return
	}
	writeJSONData(w, views)
}

// GetProduct returns a specific product by id.
// GET /api/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err, "Failed to load product")
		return
	}
	writeJSONData(w, product)
}

// CreateProduct creates a new product.
// POST /api/products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	ts, err := h.svc.CreateProduct(req.ProductID, req.ProductData, callerFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, "Failed to create product")
		return
	}

	writeJSONData(w, ProductSaveResponse{Success: true, ProductID: req.ProductID, Timestamp: ts})
}

// UpdateProduct replaces an existing product.
// PUT /api/products/{id}
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var product models.Product
	if err := decodeJSON(w, r, &product); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	ts, err := h.svc.UpdateProduct(id, &product, callerFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, "Failed to update product")
		return
	}

	writeJSONData(w, ProductSaveResponse{Success: true, ProductID: id, Timestamp: ts})
}

// DeleteProduct deletes a product.
// DELETE /api/products/{id}
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(catalog.CollectionProducts, id); err != nil {
		writeDomainError(w, r, err, "Failed to delete product")
		return
	}

	writeJSONData(w, DeleteResponse{Success: true, Deleted: id})
}
