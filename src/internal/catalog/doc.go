// Package catalog implements the CRUD rules of the storefront collections.
//
// Content pages use upsert semantics: SaveContent always overwrites. Products
// are stricter: CreateProduct rejects existing ids with CONFLICT and
// UpdateProduct requires the id to exist. Both kinds are fully replaced on
// write, except that product createdAt/createdBy are carried forward.
//
// Every mutation goes through store.Update, so concurrent writers of the same
// collection are serialized and no update is lost.
//
// Derived views (public product list, timestamps, admin info) are computed on
// each call from the stored collections.
package catalog
