package webflow

import (
	"net/url"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestAuthorizationURL_Values(t *testing.T) {
	tests := []struct {
		name string
		u    AuthorizationURL
		want url.Values
	}{
		{
			name: "all fields set",
			u: AuthorizationURL{
				ClientID:    "client-1",
				RedirectURI: "https://client.example.com/cb",
				State:       "xyz",
				Scope:       []string{"read", "write"},
				Immediate:   boolPtr(true),
			},
			want: url.Values{
				"type":         {"web_server"},
				"client_id":    {"client-1"},
				"redirect_uri": {"https://client.example.com/cb"},
				"state":        {"xyz"},
				"scope":        {"read write"},
				"immediate":    {"true"},
			},
		},
		{
			name: "required fields only",
			u: AuthorizationURL{
				ClientID:    "client-1",
				RedirectURI: "https://client.example.com/cb",
			},
			want: url.Values{
				"type":         {"web_server"},
				"client_id":    {"client-1"},
				"redirect_uri": {"https://client.example.com/cb"},
			},
		},
		{
			name: "explicit immediate false is emitted",
			u: AuthorizationURL{
				ClientID:  "client-1",
				Immediate: boolPtr(false),
			},
			want: url.Values{
				"type":      {"web_server"},
				"client_id": {"client-1"},
				"immediate": {"false"},
			},
		},
		{
			name: "no validation of required fields",
			u:    AuthorizationURL{},
			want: url.Values{
				"type": {"web_server"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.u.Values()
			if len(got) != len(tt.want) {
				t.Errorf("Values() has %d parameters, want %d: %v", len(got), len(tt.want), got)
			}
			for key, want := range tt.want {
				if got.Get(key) != want[0] {
					t.Errorf("Values()[%q] = %q, want %q", key, got.Get(key), want[0])
				}
			}
		})
	}
}

func TestAuthorizationURL_TypeIsFixed(t *testing.T) {
	// The type parameter is embedded in serialization and always web_server,
	// regardless of how the builder is populated.
	u := NewAuthorizationURL("https://server.example.com/authorize")
	u.ClientID = "client-1"

	if got := u.Values().Get("type"); got != "web_server" {
		t.Errorf("type = %q, want %q", got, "web_server")
	}
	if got := u.Values()["type"]; len(got) != 1 {
		t.Errorf("type emitted %d times, want 1", len(got))
	}
}

func TestAuthorizationURL_String(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantBase string
	}{
		{
			name:     "plain endpoint",
			endpoint: "https://server.example.com/authorize",
			wantBase: "https://server.example.com/authorize",
		},
		{
			name:     "endpoint with existing query keeps it",
			endpoint: "https://server.example.com/authorize?tenant=acme",
			wantBase: "https://server.example.com/authorize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewAuthorizationURL(tt.endpoint)
			u.ClientID = "client-1"
			u.RedirectURI = "https://client.example.com/cb"

			parsed, err := url.Parse(u.String())
			if err != nil {
				t.Fatalf("String() produced unparseable URL: %v", err)
			}
			if got := parsed.Scheme + "://" + parsed.Host + parsed.Path; got != tt.wantBase {
				t.Errorf("base = %q, want %q", got, tt.wantBase)
			}
			q := parsed.Query()
			if q.Get("type") != "web_server" {
				t.Errorf("type = %q, want %q", q.Get("type"), "web_server")
			}
			if q.Get("client_id") != "client-1" {
				t.Errorf("client_id = %q, want %q", q.Get("client_id"), "client-1")
			}
			if tt.endpoint != tt.wantBase && q.Get("tenant") != "acme" {
				t.Errorf("existing query parameter lost: tenant = %q", q.Get("tenant"))
			}
		})
	}
}

func TestAuthorizationURL_RoundTrip(t *testing.T) {
	// Building a URL and parsing its query back must yield the exact values
	// that were set, with no loss or reordering.
	u := NewAuthorizationURL("https://server.example.com/authorize")
	u.ClientID = "C"
	u.RedirectURI = "https://client.example.com/cb?step=2"
	u.Scope = []string{"calendar", "contacts"}
	u.State = "ST"

	parsed, err := url.Parse(u.String())
	if err != nil {
		t.Fatalf("url.Parse() error = %v", err)
	}
	q := parsed.Query()

	want := map[string]string{
		"type":         "web_server",
		"client_id":    "C",
		"redirect_uri": "https://client.example.com/cb?step=2",
		"scope":        "calendar contacts",
		"state":        "ST",
	}
	for key, wantValue := range want {
		if got := q.Get(key); got != wantValue {
			t.Errorf("round trip %q = %q, want %q", key, got, wantValue)
		}
	}
	if len(q) != len(want) {
		t.Errorf("round trip produced %d parameters, want %d: %v", len(q), len(want), q)
	}
}
