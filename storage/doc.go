// Package storage defines the interface for persisting tokens obtained
// through the web server flow. Implementations may be in-memory, Redis,
// database, or any other backend; the in-memory implementation lives in
// storage/memory.
package storage
