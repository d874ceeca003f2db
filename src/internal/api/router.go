package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shopworks/storefront-admin/src/internal/auth"
	"github.com/shopworks/storefront-admin/src/internal/catalog"
	"github.com/shopworks/storefront-admin/src/internal/ui"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(svc *catalog.Service, authorizer auth.Authorizer, opts Options) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(CORS(opts.CORS))
	r.Use(middleware.RedirectSlashes)
	r.Use(JSONContentType)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed", Code: ErrCodeMethodNotAllowed})
	})

	h := NewHandler(svc, opts)
	admin := RequireAdmin(authorizer)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/health", h.CheckHealth)
		r.Get("/timestamps", h.GetTimestamps)
		r.Get("/content", h.GetContent)
		r.Get("/content/{page}", h.GetContentPage)
		r.Get("/products/list", h.ListPublicProducts)
		r.Get("/products/{id}", h.GetProduct)

		if opts.ProtectProductListing {
			r.With(admin).Get("/products", h.GetProducts)
		} else {
			r.Get("/products", h.GetProducts)
		}

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(admin)

			r.Get("/admin/status", h.GetAdminStatus)
			r.Get("/admin/info", h.GetAdminInfo)

			r.Post("/content", h.SaveContent)
			r.Delete("/content/{page}", h.DeleteContentPage)

			r.Post("/products", h.CreateProduct)
			r.Put("/products/{id}", h.UpdateProduct)
			r.Delete("/products/{id}", h.DeleteProduct)

			r.Post("/reset", h.Reset)
		})
	})

	if opts.UIDir != "" {
		r.Handle("/*", ui.Handler(opts.UIDir))
	}

	return r
}
