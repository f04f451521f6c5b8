package wire

import (
	"net/url"
	"testing"
)

func TestSetNonEmpty(t *testing.T) {
	v := url.Values{}
	SetNonEmpty(v, "client_id", "client-1")
	SetNonEmpty(v, "state", "")

	if got := v.Get("client_id"); got != "client-1" {
		t.Errorf("client_id = %q, want %q", got, "client-1")
	}
	if _, present := v["state"]; present {
		t.Error("empty value must be omitted, state is present")
	}
}

func TestSetBool(t *testing.T) {
	truth := true
	falsehood := false

	tests := []struct {
		name        string
		value       *bool
		wantPresent bool
		want        string
	}{
		{name: "nil is omitted", value: nil},
		{name: "true", value: &truth, wantPresent: true, want: "true"},
		{name: "false is emitted, not omitted", value: &falsehood, wantPresent: true, want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := url.Values{}
			SetBool(v, "immediate", tt.value)
			_, present := v["immediate"]
			if present != tt.wantPresent {
				t.Fatalf("present = %v, want %v", present, tt.wantPresent)
			}
			if present && v.Get("immediate") != tt.want {
				t.Errorf("immediate = %q, want %q", v.Get("immediate"), tt.want)
			}
		})
	}
}

func TestJoinScopes(t *testing.T) {
	tests := []struct {
		name   string
		scopes []string
		want   string
	}{
		{name: "empty", scopes: nil, want: ""},
		{name: "single", scopes: []string{"read"}, want: "read"},
		{name: "multiple preserve order and duplicates", scopes: []string{"write", "read", "write"}, want: "write read write"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinScopes(tt.scopes); got != tt.want {
				t.Errorf("JoinScopes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendQuery(t *testing.T) {
	tests := []struct {
		name string
		base string
		v    url.Values
		want string
	}{
		{
			name: "plain base",
			base: "https://example.com/authorize",
			v:    url.Values{"a": {"1"}},
			want: "https://example.com/authorize?a=1",
		},
		{
			name: "base with existing query",
			base: "https://example.com/authorize?tenant=acme",
			v:    url.Values{"a": {"1"}},
			want: "https://example.com/authorize?tenant=acme&a=1",
		},
		{
			name: "no values leaves base untouched",
			base: "https://example.com/authorize",
			v:    url.Values{},
			want: "https://example.com/authorize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendQuery(tt.base, tt.v); got != tt.want {
				t.Errorf("AppendQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
