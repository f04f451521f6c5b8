// Package security provides client-side security utilities for the web
// server flow: CSRF state generation and comparison, token encryption at
// rest, outbound rate limiting, and token expiry checks with clock skew
// tolerance.
package security
