package webflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/oauthkit/webflow/instrumentation"
	"github.com/oauthkit/webflow/security"
	"github.com/oauthkit/webflow/storage"
)

// Flow composes the three steps of the web server flow behind a single
// configured entry point: building authorization URLs, parsing callbacks,
// and exchanging codes, with optional token persistence, rate limiting, and
// instrumentation.
//
// The underlying value types (AuthorizationURL, AuthorizationResponse,
// AccessTokenRequest) remain independently usable; Flow only composes them
// and adds no protocol behavior of its own. Control flow stays with the
// caller: Flow keeps no per-user state and tracks no sequencing between the
// steps.
type Flow struct {
	config  *Config
	tokens  storage.TokenStore
	limiter *security.RateLimiter
	inst    *instrumentation.Instrumentation
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewFlow creates a Flow from the given configuration.
func NewFlow(config *Config) (*Flow, error) {
	if config == nil {
		return nil, fmt.Errorf("webflow: config is required")
	}
	if strings.TrimSpace(config.ClientID) == "" {
		return nil, fmt.Errorf("webflow: client ID is required")
	}
	if strings.TrimSpace(config.AuthorizationEndpoint) == "" {
		return nil, fmt.Errorf("webflow: authorization endpoint is required")
	}
	if strings.TrimSpace(config.TokenEndpoint) == "" {
		return nil, fmt.Errorf("webflow: token endpoint is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	inst := config.Instrumentation
	if inst == nil {
		var err error
		inst, err = instrumentation.New(instrumentation.Config{Enabled: false})
		if err != nil {
			return nil, fmt.Errorf("webflow: create noop instrumentation: %w", err)
		}
	}

	return &Flow{
		config:  config,
		tokens:  config.Tokens,
		limiter: security.NewRateLimiter(config.RateLimit.Rate, config.RateLimit.Burst, logger),
		inst:    inst,
		tracer:  inst.Tracer("flow"),
		logger:  logger,
	}, nil
}

// AuthorizationURL returns a populated authorization URL builder carrying the
// configured client ID, redirect URI, and scopes, plus the given state. The
// caller may still adjust optional fields (Immediate, Scope) before
// serializing with String.
func (f *Flow) AuthorizationURL(state string) *AuthorizationURL {
	u := NewAuthorizationURL(f.config.AuthorizationEndpoint)
	u.ClientID = f.config.ClientID
	u.RedirectURI = f.config.RedirectURI
	u.State = state
	u.Scope = append([]string(nil), f.config.Scope...)

	f.inst.Metrics().RecordAuthorizationStarted(context.Background(), f.config.ClientID)
	f.logger.Debug("built authorization URL", "client_id", f.config.ClientID, "state_present", state != "")
	return u
}

// ParseCallback decodes the callback URL received on the redirect URI.
// Outcome branching (granted, denied, ambiguous) stays with the caller.
func (f *Flow) ParseCallback(rawURL string) (*AuthorizationResponse, error) {
	resp, err := ParseAuthorizationResponse(rawURL)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	f.inst.Metrics().RecordCallbackParsed(ctx, resp.Granted())
	if resp.Denied() {
		f.inst.Metrics().RecordAccessDenied(ctx, resp.Error)
		f.logger.Info("authorization denied by end user", "error", resp.Error)
	}
	return resp, nil
}

// Exchange trades a verification code for an access token. When a token
// store is configured and subject is non-empty, the obtained token is
// persisted under subject.
func (f *Flow) Exchange(ctx context.Context, subject, code string) (*TokenResponse, error) {
	ctx, span := f.tracer.Start(ctx, "webflow.Exchange", trace.WithAttributes(
		attribute.String(instrumentation.AttrClientID, f.config.ClientID),
		attribute.String(instrumentation.AttrGrantType, GrantTypeWebServer),
		attribute.String(instrumentation.AttrTokenEndpoint, f.config.TokenEndpoint),
	))
	defer span.End()

	if err := f.limiter.Wait(ctx); err != nil {
		instrumentation.RecordError(span, err)
		return nil, fmt.Errorf("webflow: rate limit wait: %w", err)
	}

	req := NewAccessTokenRequest(f.config.TokenEndpoint)
	req.ClientID = f.config.ClientID
	req.ClientSecret = f.config.ClientSecret
	req.HTTPClient = f.config.HTTPClient
	req.Code = code
	req.RedirectURI = f.config.RedirectURI

	start := time.Now()
	resp, err := req.Execute(ctx)
	f.inst.Metrics().RecordCodeExchange(ctx, f.config.ClientID, err == nil, float64(time.Since(start).Milliseconds()))
	if err != nil {
		instrumentation.RecordError(span, err)
		f.logger.Error("code exchange failed", "error", err)
		return nil, err
	}

	instrumentation.SetSpanAttributes(span,
		attribute.Int64(instrumentation.AttrExpiresIn, resp.ExpiresIn),
		attribute.Bool(instrumentation.AttrRefreshPresent, resp.RefreshToken != ""),
	)
	f.logger.Debug("exchanged code for token", "expires_in", resp.ExpiresIn, "refresh_present", resp.RefreshToken != "")

	if err := f.persist(ctx, subject, resp); err != nil {
		instrumentation.RecordError(span, err)
		return nil, err
	}
	return resp, nil
}

// Refresh obtains a fresh access token from a refresh token. When a token
// store is configured and subject is non-empty, the stored token is replaced.
func (f *Flow) Refresh(ctx context.Context, subject, refreshToken string) (*TokenResponse, error) {
	ctx, span := f.tracer.Start(ctx, "webflow.Refresh", trace.WithAttributes(
		attribute.String(instrumentation.AttrClientID, f.config.ClientID),
		attribute.String(instrumentation.AttrGrantType, GrantTypeRefreshToken),
		attribute.String(instrumentation.AttrTokenEndpoint, f.config.TokenEndpoint),
	))
	defer span.End()

	if err := f.limiter.Wait(ctx); err != nil {
		instrumentation.RecordError(span, err)
		return nil, fmt.Errorf("webflow: rate limit wait: %w", err)
	}

	req := NewRefreshTokenRequest(f.config.TokenEndpoint)
	req.ClientID = f.config.ClientID
	req.ClientSecret = f.config.ClientSecret
	req.HTTPClient = f.config.HTTPClient
	req.RefreshToken = refreshToken

	start := time.Now()
	resp, err := req.Execute(ctx)
	f.inst.Metrics().RecordTokenRefresh(ctx, f.config.ClientID, err == nil, float64(time.Since(start).Milliseconds()))
	if err != nil {
		instrumentation.RecordError(span, err)
		f.logger.Error("token refresh failed", "error", err)
		return nil, err
	}

	// Servers may omit the refresh token on refresh; keep using the old one
	if resp.RefreshToken == "" {
		resp.RefreshToken = refreshToken
	}

	if err := f.persist(ctx, subject, resp); err != nil {
		instrumentation.RecordError(span, err)
		return nil, err
	}
	return resp, nil
}

func (f *Flow) persist(ctx context.Context, subject string, resp *TokenResponse) error {
	if f.tokens == nil || subject == "" {
		return nil
	}
	if err := f.tokens.SaveToken(ctx, subject, resp.Token()); err != nil {
		return fmt.Errorf("webflow: save token: %w", err)
	}
	return nil
}
