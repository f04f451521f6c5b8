package webflow

import (
	"time"

	"golang.org/x/oauth2"
)

// TokenResponse represents a successful token endpoint response.
type TokenResponse struct {
	// AccessToken is the issued access token
	AccessToken string `json:"access_token"`

	// ExpiresIn is the token lifetime in seconds, 0 if the server did not
	// report one
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// RefreshToken is the refresh token, if the server issued one
	RefreshToken string `json:"refresh_token,omitempty"`

	// Scope is the granted scope as a space-delimited list, which may differ
	// from the requested scope
	Scope string `json:"scope,omitempty"`
}

// Token converts the response to a standard *oauth2.Token for use with
// golang.org/x/oauth2 transports and token stores. Expiry is computed from
// ExpiresIn relative to the current time; zero ExpiresIn yields a token
// without expiry.
func (r *TokenResponse) Token() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  r.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: r.RefreshToken,
	}
	if r.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	return token
}
