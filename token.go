package webflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oauthkit/webflow/internal/wire"
)

const (
	defaultTokenRequestTimeout = 30 * time.Second
	maxTokenResponseBodyBytes  = 1 << 20 // 1 MiB
)

// GrantTypeRefreshToken identifies the refresh-token profile used by
// RefreshTokenRequest.
const GrantTypeRefreshToken = "refresh_token"

// TokenRequest holds the field set shared by every token endpoint request:
// the endpoint itself, the client credentials, the fixed grant type slot, and
// the execution capability. Concrete request types embed it and add their own
// parameters.
//
// Credentials are sent in the form body, as the protocol specifies. The zero
// value is not usable; construct requests through NewAccessTokenRequest or
// NewRefreshTokenRequest, which pin the grant type.
type TokenRequest struct {
	// Endpoint is the authorization server's token endpoint URL.
	Endpoint string

	// ClientID is the client identifier (required).
	ClientID string

	// ClientSecret is the client secret (required for confidential clients).
	ClientSecret string

	// HTTPClient is the client used to execute the request. If nil, a default
	// client with a 30 second timeout is used. Transport concerns such as
	// TLS, retries, and pooling belong to this client, not to the request.
	HTTPClient *http.Client

	grantType string
}

// GrantType returns the fixed grant type this request was constructed with.
func (r *TokenRequest) GrantType() string {
	return r.grantType
}

// baseValues serializes the shared fields. The grant_type parameter is always
// present and cannot be overridden by the caller.
func (r *TokenRequest) baseValues() url.Values {
	v := url.Values{}
	v.Set("grant_type", r.grantType)
	wire.SetNonEmpty(v, "client_id", r.ClientID)
	wire.SetNonEmpty(v, "client_secret", r.ClientSecret)
	return v
}

// execute POSTs the form body to the token endpoint and decodes the response.
// Protocol errors reported by the server are returned as *OAuthError; any
// transport failure surfaces from the HTTP client unchanged apart from
// wrapping.
func (r *TokenRequest) execute(ctx context.Context, form url.Values) (*TokenResponse, error) {
	if strings.TrimSpace(r.Endpoint) == "" {
		return nil, fmt.Errorf("webflow: token endpoint is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := r.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTokenRequestTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webflow: token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("webflow: read token response: %w", err)
	}
	if int64(len(body)) > maxTokenResponseBodyBytes {
		return nil, fmt.Errorf("webflow: token response exceeds %d bytes", maxTokenResponseBodyBytes)
	}

	payload, err := parseTokenPayload(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("webflow: decode token response: %w", err)
	}
	if payload.errorCode != "" {
		return nil, NewOAuthError(payload.errorCode, payload.errorDescription, resp.StatusCode)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("webflow: token endpoint returned status %d", resp.StatusCode)
	}
	if payload.response.AccessToken == "" {
		return nil, fmt.Errorf("webflow: token endpoint response missing access token")
	}
	return payload.response, nil
}

// AccessTokenRequest exchanges the verification code obtained from the
// authorization callback for an access token.
//
// The most commonly set fields are ClientID, ClientSecret, Code, and
// RedirectURI. Call Execute to perform the exchange. The grant_type parameter
// is fixed to "web_server".
type AccessTokenRequest struct {
	TokenRequest

	// Code is the verification code received from the authorization server
	// (required).
	Code string

	// RedirectURI is the redirection URI used in the initial authorization
	// request (required). It must be byte-identical to that value; servers
	// reject mismatches. The equality is a caller obligation, not compared
	// against any stored prior value.
	RedirectURI string
}

// NewAccessTokenRequest creates an access token request for the given token
// endpoint with the grant type fixed to "web_server".
func NewAccessTokenRequest(endpoint string) *AccessTokenRequest {
	return &AccessTokenRequest{
		TokenRequest: TokenRequest{
			Endpoint:  endpoint,
			grantType: GrantTypeWebServer,
		},
	}
}

// Values serializes the request as the token endpoint form body. Code and
// RedirectURI are emitted exactly as set, never normalized.
func (r *AccessTokenRequest) Values() url.Values {
	v := r.baseValues()
	wire.SetNonEmpty(v, "code", r.Code)
	wire.SetNonEmpty(v, "redirect_uri", r.RedirectURI)
	return v
}

// Execute performs the token exchange.
func (r *AccessTokenRequest) Execute(ctx context.Context) (*TokenResponse, error) {
	return r.execute(ctx, r.Values())
}

// RefreshTokenRequest obtains a fresh access token from a previously issued
// refresh token. The grant_type parameter is fixed to "refresh_token".
type RefreshTokenRequest struct {
	TokenRequest

	// RefreshToken is the refresh token issued with a prior access token
	// (required).
	RefreshToken string
}

// NewRefreshTokenRequest creates a refresh token request for the given token
// endpoint with the grant type fixed to "refresh_token".
func NewRefreshTokenRequest(endpoint string) *RefreshTokenRequest {
	return &RefreshTokenRequest{
		TokenRequest: TokenRequest{
			Endpoint:  endpoint,
			grantType: GrantTypeRefreshToken,
		},
	}
}

// Values serializes the request as the token endpoint form body.
func (r *RefreshTokenRequest) Values() url.Values {
	v := r.baseValues()
	wire.SetNonEmpty(v, "refresh_token", r.RefreshToken)
	return v
}

// Execute performs the refresh.
func (r *RefreshTokenRequest) Execute(ctx context.Context) (*TokenResponse, error) {
	return r.execute(ctx, r.Values())
}

// tokenPayload is the decoded token endpoint response body, success or error.
type tokenPayload struct {
	response         *TokenResponse
	errorCode        string
	errorDescription string
}

// parseTokenPayload decodes a token endpoint response. Servers implementing
// the draft answer with JSON, but legacy deployments return form-encoded
// bodies; both are accepted, with the Content-Type header deciding and a
// JSON-then-form fallback when it is missing or unknown.
func parseTokenPayload(body []byte, contentType string) (*tokenPayload, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.Contains(contentType, "json"):
		return parseTokenPayloadJSON(body)
	case strings.Contains(contentType, "x-www-form-urlencoded"), strings.Contains(contentType, "text/plain"):
		return parseTokenPayloadForm(body)
	}
	if payload, err := parseTokenPayloadJSON(body); err == nil {
		return payload, nil
	}
	return parseTokenPayloadForm(body)
}

func parseTokenPayloadJSON(body []byte) (*tokenPayload, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, err
	}
	return &tokenPayload{
		response: &TokenResponse{
			AccessToken:  readString(decoded["access_token"]),
			ExpiresIn:    readInt64(decoded["expires_in"]),
			RefreshToken: readString(decoded["refresh_token"]),
			Scope:        readString(decoded["scope"]),
		},
		errorCode:        readString(decoded["error"]),
		errorDescription: readString(decoded["error_description"]),
	}, nil
}

func parseTokenPayloadForm(body []byte) (*tokenPayload, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, err
	}
	expiresIn, _ := strconv.ParseInt(values.Get("expires_in"), 10, 64)
	return &tokenPayload{
		response: &TokenResponse{
			AccessToken:  values.Get("access_token"),
			ExpiresIn:    expiresIn,
			RefreshToken: values.Get("refresh_token"),
			Scope:        values.Get("scope"),
		},
		errorCode:        values.Get("error"),
		errorDescription: values.Get("error_description"),
	}, nil
}

func readString(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	default:
		return ""
	}
}

func readInt64(value any) int64 {
	switch typed := value.(type) {
	case float64:
		return int64(typed)
	case json.Number:
		parsed, err := typed.Int64()
		if err == nil {
			return parsed
		}
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err == nil {
			return parsed
		}
	}
	return 0
}
