package webflow

import (
	"fmt"
	"net/url"
)

// AuthorizationResponse holds the query parameters the authorization server
// set when redirecting the user agent back to the client's redirect URI.
//
// Exactly one of Error and Code is present on a well-formed callback. Both
// absent is an ambiguous callback (typically a plain visit to the redirect
// endpoint) that the caller must handle explicitly; it is not surfaced as a
// distinct error kind.
type AuthorizationResponse struct {
	// Error is set iff the end user denied authorization ("user_denied").
	Error string

	// Code is the one-time verification code generated by the authorization
	// server, set iff the end user granted authorization.
	Code string

	// State echoes the exact state value sent in the authorization request,
	// if one was sent. Verifying the echo against the original value is the
	// caller's responsibility; no memory of the prior request is kept here.
	State string
}

// ParseAuthorizationResponse decodes the full callback URL received on the
// redirect URI, including its query string. Missing parameters are
// represented as empty fields, never as an error; parsing fails only when the
// URL itself cannot be parsed.
//
// When the server reports an error, the grant is denied and any literal code
// parameter is dropped.
func ParseAuthorizationResponse(rawURL string) (*AuthorizationResponse, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("webflow: parse callback URL: %w", err)
	}

	q := u.Query()
	resp := &AuthorizationResponse{
		Error: q.Get("error"),
		Code:  q.Get("code"),
		State: q.Get("state"),
	}
	if resp.Error != "" {
		resp.Code = ""
	}
	return resp, nil
}

// Denied reports whether the end user denied authorization.
func (r *AuthorizationResponse) Denied() bool {
	return r.Error != ""
}

// Granted reports whether the end user granted authorization and a
// verification code is available for the token exchange.
func (r *AuthorizationResponse) Granted() bool {
	return r.Error == "" && r.Code != ""
}

// Err returns the denial as an *OAuthError, or nil if authorization was not
// denied.
func (r *AuthorizationResponse) Err() error {
	if r.Error == "" {
		return nil
	}
	return NewOAuthError(r.Error, "end user denied authorization", 0)
}
