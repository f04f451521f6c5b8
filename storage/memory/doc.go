// Package memory provides an in-memory implementation of the token store.
// It is suitable for development, testing, and single-instance deployments.
// Tokens are optionally encrypted at rest and expired entries without a
// refresh token are removed by a background cleanup loop.
package memory
