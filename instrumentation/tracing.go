package instrumentation

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Common span attribute keys.
//
// SECURITY: Never record actual credential values (access tokens, refresh
// tokens, verification codes, client secrets) on spans. Traces are persisted,
// replicated, and readable by wider audiences than production systems. Only
// record metadata: presence flags, grant types, expiry durations, error
// codes.
const (
	AttrClientID         = "oauth.client_id"         // Client identifier (non-secret)
	AttrGrantType        = "oauth.grant_type"        // Fixed grant type of the request
	AttrRedirectURI      = "oauth.redirect_uri"      // Redirect URI
	AttrScope            = "oauth.scope"             // Requested scopes
	AttrImmediate        = "oauth.immediate"         // Immediate-mode flag
	AttrCodePresent      = "oauth.code_present"      // Whether the callback carried a code (boolean)
	AttrStatePresent     = "oauth.state_present"     // Whether the callback echoed a state (boolean)
	AttrExpiresIn        = "oauth.expires_in"        // Token lifetime reported by the server
	AttrRefreshPresent   = "oauth.refresh_present"   //nolint:gosec // Whether a refresh token was issued (boolean)
	AttrError            = "oauth.error"             // Protocol error code
	AttrErrorDescription = "oauth.error_description" // Protocol error description

	// Storage attributes
	AttrStorageOperation = "storage.operation"
	AttrStorageResult    = "storage.result"

	// Endpoint attributes
	AttrTokenEndpoint = "oauth.token_endpoint"
)

// RecordError records an error on a span with proper status codes (nil-safe)
func RecordError(span trace.Span, err error) {
	if span != nil && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanAttributes sets attributes on a span (nil-safe)
func SetSpanAttributes(span trace.Span, attrs ...attribute.KeyValue) {
	if span != nil {
		span.SetAttributes(attrs...)
	}
}
