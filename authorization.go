package webflow

import (
	"net/url"

	"github.com/oauthkit/webflow/internal/wire"
)

// GrantTypeWebServer identifies the web server (authorization-code) profile.
// It is emitted as the fixed "type" parameter on authorization URLs and as
// the fixed "grant_type" parameter on access token requests, and is never
// caller-settable.
const GrantTypeWebServer = "web_server"

// AuthorizationURL builds the authorization web page URL that the end user is
// redirected to for granting or denying the application access to their
// protected resources.
//
// The most commonly set fields are ClientID and RedirectURI, and possibly
// Scope. After the end user grants or denies the request, the user agent is
// redirected to RedirectURI with query parameters set by the authorization
// server; parse those with ParseAuthorizationResponse.
//
// AuthorizationURL is a pure serializer: no field presence is validated
// locally. An unset required field simply produces a URL missing that
// parameter, and the authorization server rejects it.
type AuthorizationURL struct {
	// Endpoint is the authorization server's end-user authorization endpoint.
	// It is assumed to be an absolute, already-encoded URL; an existing query
	// component is preserved.
	Endpoint string

	// ClientID is the client identifier (required by the protocol).
	ClientID string

	// RedirectURI is the absolute URI the authorization server redirects the
	// user agent to when the end-user authorization step is completed.
	// Required unless a redirection URI has been established between client
	// and authorization server via other means. Servers may reject URIs that
	// contain a query component.
	RedirectURI string

	// State is an opaque value used by the client to maintain state between
	// the request and callback. The authorization server echoes it verbatim
	// when redirecting back. Optional.
	State string

	// Scope is the list of requested scope tokens, serialized
	// space-delimited. Order and duplication are the caller's concern.
	// Optional.
	Scope []string

	// Immediate asks the server not to prompt the end user and instead answer
	// from an existing approval. Tri-state: nil is omitted from the URL and
	// defaults to false at the server, which is distinct from an explicit
	// "false" at the wire level. Optional.
	Immediate *bool
}

// NewAuthorizationURL creates an authorization URL builder for the given
// end-user authorization endpoint.
func NewAuthorizationURL(endpoint string) *AuthorizationURL {
	return &AuthorizationURL{Endpoint: endpoint}
}

// Values serializes the flow parameters under their wire names. The fixed
// type=web_server parameter is always present; unset optional fields are
// omitted.
func (u *AuthorizationURL) Values() url.Values {
	v := url.Values{}
	v.Set("type", GrantTypeWebServer)
	wire.SetNonEmpty(v, "client_id", u.ClientID)
	wire.SetNonEmpty(v, "redirect_uri", u.RedirectURI)
	wire.SetNonEmpty(v, "state", u.State)
	wire.SetNonEmpty(v, "scope", wire.JoinScopes(u.Scope))
	wire.SetBool(v, "immediate", u.Immediate)
	return v
}

// String returns the fully composed authorization URL.
func (u *AuthorizationURL) String() string {
	return wire.AppendQuery(u.Endpoint, u.Values())
}
