package storage

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNotFound is returned when no token is stored for a subject.
var ErrNotFound = errors.New("storage: token not found")

// TokenStore defines the interface for storing and retrieving tokens.
// Tokens are keyed by an opaque subject chosen by the caller (a user ID, a
// session ID). Uses golang.org/x/oauth2.Token directly.
// All methods accept context.Context for tracing and cancellation.
type TokenStore interface {
	// SaveToken saves a token for a subject, replacing any previous one
	SaveToken(ctx context.Context, subject string, token *oauth2.Token) error

	// GetToken retrieves the token for a subject.
	// Returns ErrNotFound if none is stored.
	GetToken(ctx context.Context, subject string) (*oauth2.Token, error)

	// DeleteToken removes the token for a subject
	DeleteToken(ctx context.Context, subject string) error
}
