package webflow

import (
	"testing"
	"time"
)

func TestTokenResponse_Token(t *testing.T) {
	tests := []struct {
		name       string
		resp       TokenResponse
		wantExpiry bool
	}{
		{
			name: "full response",
			resp: TokenResponse{
				AccessToken:  "at-1",
				ExpiresIn:    3600,
				RefreshToken: "rt-1",
				Scope:        "read write",
			},
			wantExpiry: true,
		},
		{
			name: "no expiry reported",
			resp: TokenResponse{
				AccessToken: "at-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			token := tt.resp.Token()

			if token.AccessToken != tt.resp.AccessToken {
				t.Errorf("AccessToken = %q, want %q", token.AccessToken, tt.resp.AccessToken)
			}
			if token.RefreshToken != tt.resp.RefreshToken {
				t.Errorf("RefreshToken = %q, want %q", token.RefreshToken, tt.resp.RefreshToken)
			}
			if token.TokenType != "Bearer" {
				t.Errorf("TokenType = %q, want %q", token.TokenType, "Bearer")
			}

			if !tt.wantExpiry {
				if !token.Expiry.IsZero() {
					t.Errorf("Expiry = %v, want zero", token.Expiry)
				}
				return
			}
			wantMin := before.Add(time.Duration(tt.resp.ExpiresIn) * time.Second)
			if token.Expiry.Before(wantMin) {
				t.Errorf("Expiry = %v, want at or after %v", token.Expiry, wantMin)
			}
			if token.Expiry.After(time.Now().Add(time.Duration(tt.resp.ExpiresIn)*time.Second + time.Minute)) {
				t.Errorf("Expiry = %v is implausibly far in the future", token.Expiry)
			}
		})
	}
}
