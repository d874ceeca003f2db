// Package models defines the records stored by storefront-admin: free-form
// content pages and product listings, plus the public product projection.
package models
