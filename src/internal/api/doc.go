// Package api provides the REST API of storefront-admin.
//
// Public endpoints read content and products; mutating endpoints sit behind
// the admin gate (see package auth):
//
//	GET    /api/health
//	GET    /api/timestamps
//	GET    /api/content
//	GET    /api/content/{page}
//	GET    /api/products            (admin-only with protect_product_listing)
//	GET    /api/products/list
//	GET    /api/products/{id}
//	GET    /api/admin/status        admin
//	GET    /api/admin/info          admin
//	POST   /api/content             admin
//	DELETE /api/content/{page}      admin
//	POST   /api/products            admin
//	PUT    /api/products/{id}       admin
//	DELETE /api/products/{id}       admin
//	POST   /api/reset               admin
//
// # Response Format
//
// Successful responses are the payload itself. Errors use:
//
//	{
//	  "error": "Human-readable message",
//	  "code": "machine_code",
//	  "ip": "203.0.113.7"        // only on 403
//	}
//
// Storage failures are logged with the request id and answered with a generic
// message. Collection reads carry an ETag; send it back in If-None-Match to
// get 304 when nothing changed.
package api
