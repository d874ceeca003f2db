// Package store implements durable storage of named JSON collections.
//
// A collection is a mapping from string keys to JSON records. Two
// implementations are provided:
//   - FileStore: one pretty-printed JSON file per collection, written with
//     atomic replace (temp file in the same directory, fsync, rename)
//   - MemoryStore: process-local maps, for tests and ephemeral deployments
//
// Missing collections load as empty mappings. Read failures surface as
// IO_FAILURE, corrupt files as PARSE_FAILURE.
//
// # Concurrency
//
// Load and Save are independent operations; two callers doing their own
// load-mutate-save may still lose an update. Update closes that gap by running
// the whole cycle under a per-collection mutex, so writers of the same
// collection are serialized while different collections proceed in parallel.
// The lock is process-local and does not protect against other processes
// writing the same data directory.
package store
