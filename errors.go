package webflow

import (
	"fmt"
	"net/http"
)

// Protocol error codes defined by draft-ietf-oauth-v2-06
const (
	// ErrorCodeUserDenied is set on the redirect URI when the end user
	// denies the authorization request
	ErrorCodeUserDenied = "user_denied"

	// Token endpoint error codes
	ErrorCodeRedirectURIMismatch        = "redirect_uri_mismatch"
	ErrorCodeBadVerificationCode        = "bad_verification_code"
	ErrorCodeIncorrectClientCredentials = "incorrect_client_credentials"
	ErrorCodeUnauthorizedClient         = "unauthorized_client"
	ErrorCodeUnsupportedGrantType       = "unsupported_grant_type"
	ErrorCodeInvalidClientID            = "invalid_client_id"
	ErrorCodeAuthorizationExpired       = "authorization_expired"
)

// OAuthError represents a protocol-level error reported by the authorization
// server, either on the redirect URI or in a token endpoint response.
type OAuthError struct {
	Code        string // Protocol error code (e.g., "user_denied", "bad_verification_code")
	Description string // Human-readable error description, if the server sent one
	Status      int    // HTTP status code of the token endpoint response, 0 for redirect errors
}

// Error implements the error interface
func (e *OAuthError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// NewOAuthError creates a new OAuth error
func NewOAuthError(code, description string, status int) *OAuthError {
	return &OAuthError{
		Code:        code,
		Description: description,
		Status:      status,
	}
}

// Common OAuth errors as reusable constructors
var (
	// ErrUserDenied indicates the end user denied the authorization request
	ErrUserDenied = func(desc string) *OAuthError {
		return NewOAuthError(ErrorCodeUserDenied, desc, 0)
	}

	// ErrBadVerificationCode indicates the authorization code is invalid or expired
	ErrBadVerificationCode = func(desc string) *OAuthError {
		return NewOAuthError(ErrorCodeBadVerificationCode, desc, http.StatusBadRequest)
	}

	// ErrRedirectURIMismatch indicates the redirect URI does not match the one
	// used to build the authorization URL
	ErrRedirectURIMismatch = func(desc string) *OAuthError {
		return NewOAuthError(ErrorCodeRedirectURIMismatch, desc, http.StatusBadRequest)
	}

	// ErrIncorrectClientCredentials indicates client authentication failed
	ErrIncorrectClientCredentials = func(desc string) *OAuthError {
		return NewOAuthError(ErrorCodeIncorrectClientCredentials, desc, http.StatusUnauthorized)
	}
)
