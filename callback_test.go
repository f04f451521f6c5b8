package webflow

import (
	"errors"
	"testing"
)

func TestParseAuthorizationResponse(t *testing.T) {
	tests := []struct {
		name        string
		rawURL      string
		wantError   string
		wantCode    string
		wantState   string
		wantGranted bool
		wantDenied  bool
	}{
		{
			name:       "user denied",
			rawURL:     "https://client.example.com/cb?error=access_denied",
			wantError:  "access_denied",
			wantDenied: true,
		},
		{
			name:        "granted with state",
			rawURL:      "https://client.example.com/cb?code=ABC123&state=xyz",
			wantCode:    "ABC123",
			wantState:   "xyz",
			wantGranted: true,
		},
		{
			name:   "ambiguous callback with neither code nor error",
			rawURL: "https://client.example.com/cb",
		},
		{
			name:   "unrelated parameters only",
			rawURL: "https://client.example.com/cb?foo=bar",
		},
		{
			name:       "error wins over a literal code",
			rawURL:     "https://client.example.com/cb?error=user_denied&code=ABC123",
			wantError:  "user_denied",
			wantDenied: true,
		},
		{
			name:       "denied with echoed state",
			rawURL:     "https://client.example.com/cb?error=user_denied&state=xyz",
			wantError:  "user_denied",
			wantState:  "xyz",
			wantDenied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseAuthorizationResponse(tt.rawURL)
			if err != nil {
				t.Fatalf("ParseAuthorizationResponse() error = %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", resp.Error, tt.wantError)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.State != tt.wantState {
				t.Errorf("State = %q, want %q", resp.State, tt.wantState)
			}
			if resp.Granted() != tt.wantGranted {
				t.Errorf("Granted() = %v, want %v", resp.Granted(), tt.wantGranted)
			}
			if resp.Denied() != tt.wantDenied {
				t.Errorf("Denied() = %v, want %v", resp.Denied(), tt.wantDenied)
			}
		})
	}
}

func TestParseAuthorizationResponse_InvalidURL(t *testing.T) {
	if _, err := ParseAuthorizationResponse("http://[::1"); err == nil {
		t.Error("ParseAuthorizationResponse() expected error for unparseable URL")
	}
}

func TestAuthorizationResponse_Err(t *testing.T) {
	tests := []struct {
		name     string
		resp     AuthorizationResponse
		wantCode string
	}{
		{
			name:     "denied",
			resp:     AuthorizationResponse{Error: "user_denied"},
			wantCode: "user_denied",
		},
		{
			name: "granted",
			resp: AuthorizationResponse{Code: "ABC123"},
		},
		{
			name: "ambiguous",
			resp: AuthorizationResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Err()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Err() = %v, want nil", err)
				}
				return
			}
			var oauthErr *OAuthError
			if !errors.As(err, &oauthErr) {
				t.Fatalf("Err() = %T, want *OAuthError", err)
			}
			if oauthErr.Code != tt.wantCode {
				t.Errorf("Err().Code = %q, want %q", oauthErr.Code, tt.wantCode)
			}
		})
	}
}
