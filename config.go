package webflow

import (
	"log/slog"
	"net/http"

	"github.com/oauthkit/webflow/instrumentation"
	"github.com/oauthkit/webflow/storage"
)

// Config holds the Flow configuration
type Config struct {
	// AuthorizationEndpoint is the authorization server's end-user
	// authorization endpoint (required).
	AuthorizationEndpoint string

	// TokenEndpoint is the authorization server's token endpoint (required).
	TokenEndpoint string

	// ClientID is the client identifier (required).
	ClientID string

	// ClientSecret is the client secret. Required for confidential clients;
	// sent in the token request form body.
	ClientSecret string

	// RedirectURI is the redirection URI used for both the authorization URL
	// and the token exchange. The protocol requires the two to be
	// byte-identical, which Flow guarantees by using this single value.
	RedirectURI string

	// Scope is the default list of scope tokens requested on authorization
	// URLs.
	Scope []string

	// Tokens is an optional token store; when set, Exchange and Refresh
	// persist the obtained token under the caller-supplied subject.
	Tokens storage.TokenStore

	// RateLimit throttles outbound token endpoint calls. Zero disables.
	RateLimit RateLimitConfig

	// Logger for structured logging (optional, uses default if not provided)
	Logger *slog.Logger

	// HTTPClient is a custom HTTP client for token endpoint requests.
	// If not provided, a default client with a 30 second timeout is used.
	HTTPClient *http.Client

	// Instrumentation enables OpenTelemetry metrics and tracing (optional).
	Instrumentation *instrumentation.Instrumentation
}

// RateLimitConfig holds rate limiting configuration for token endpoint calls
type RateLimitConfig struct {
	// Rate is sustained requests per second. Zero disables limiting.
	Rate int

	// Burst is the maximum burst size.
	Burst int
}
