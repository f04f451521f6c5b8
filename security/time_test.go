package security

import (
	"testing"
	"time"
)

func TestIsTokenExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "future expiry",
			expiresAt: time.Now().Add(time.Hour),
			want:      false,
		},
		{
			name:      "expired beyond grace period",
			expiresAt: time.Now().Add(-time.Minute),
			want:      true,
		},
		{
			name:      "just expired within grace period",
			expiresAt: time.Now().Add(-time.Second),
			want:      false,
		},
		{
			name: "zero expiry never expires",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTokenExpired(tt.expiresAt); got != tt.want {
				t.Errorf("IsTokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTokenExpiringSoon(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		threshold time.Duration
		want      bool
	}{
		{
			name:      "expires within threshold",
			expiresAt: time.Now().Add(time.Minute),
			threshold: 5 * time.Minute,
			want:      true,
		},
		{
			name:      "expires after threshold",
			expiresAt: time.Now().Add(time.Hour),
			threshold: 5 * time.Minute,
			want:      false,
		},
		{
			name:      "zero expiry never expires",
			threshold: 5 * time.Minute,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTokenExpiringSoon(tt.expiresAt, tt.threshold); got != tt.want {
				t.Errorf("IsTokenExpiringSoon() = %v, want %v", got, tt.want)
			}
		})
	}
}
