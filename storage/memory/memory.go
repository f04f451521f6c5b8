package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/oauthkit/webflow/instrumentation"
	"github.com/oauthkit/webflow/security"
	"github.com/oauthkit/webflow/storage"
)

// storedToken holds a token's fields as kept at rest. The access and refresh
// tokens are encrypted when an encryptor is configured.
type storedToken struct {
	accessToken  string
	refreshToken string
	tokenType    string
	expiry       time.Time
}

// Store is an in-memory implementation of storage.TokenStore.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]*storedToken

	// Token encryption at rest (optional)
	encryptor *security.Encryptor

	instrumentation *instrumentation.Instrumentation

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
	logger          *slog.Logger
}

var _ storage.TokenStore = (*Store)(nil)

// New creates a new in-memory store with the default cleanup interval
// (1 minute).
func New() *Store {
	return NewWithInterval(time.Minute)
}

// NewWithInterval creates a new in-memory store with a custom cleanup
// interval. A zero or negative interval disables the cleanup loop.
func NewWithInterval(interval time.Duration) *Store {
	s := &Store{
		tokens:          make(map[string]*storedToken),
		cleanupInterval: interval,
		stopCleanup:     make(chan struct{}),
		logger:          slog.Default(),
	}
	if interval > 0 {
		go s.cleanupLoop()
	}
	return s
}

// SetEncryptor enables token encryption at rest. It should be called before
// the store receives traffic; already stored tokens are not re-encrypted.
func (s *Store) SetEncryptor(enc *security.Encryptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encryptor = enc
}

// SetLogger replaces the store's logger.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// SetInstrumentation enables metric recording for storage operations.
func (s *Store) SetInstrumentation(inst *instrumentation.Instrumentation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instrumentation = inst
}

// Close stops the background cleanup loop.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCleanup)
	})
}

// SaveToken saves a token for a subject, replacing any previous one.
func (s *Store) SaveToken(ctx context.Context, subject string, token *oauth2.Token) error {
	start := time.Now()
	if subject == "" {
		return fmt.Errorf("memory: subject cannot be empty")
	}
	if token == nil {
		return fmt.Errorf("memory: token cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	access, err := s.sealLocked(token.AccessToken)
	if err != nil {
		s.recordLocked(ctx, "save_token", "error", start)
		return fmt.Errorf("memory: encrypt access token: %w", err)
	}
	refresh, err := s.sealLocked(token.RefreshToken)
	if err != nil {
		s.recordLocked(ctx, "save_token", "error", start)
		return fmt.Errorf("memory: encrypt refresh token: %w", err)
	}

	s.tokens[subject] = &storedToken{
		accessToken:  access,
		refreshToken: refresh,
		tokenType:    token.TokenType,
		expiry:       token.Expiry,
	}
	s.recordLocked(ctx, "save_token", "success", start)
	s.logger.Debug("saved token", "subject", subject, "expiry", token.Expiry)
	return nil
}

// GetToken retrieves the token for a subject. Expired tokens are still
// returned while present, since their refresh token may remain usable.
func (s *Store) GetToken(ctx context.Context, subject string) (*oauth2.Token, error) {
	start := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.tokens[subject]
	if !ok {
		s.recordLocked(ctx, "get_token", "miss", start)
		return nil, storage.ErrNotFound
	}

	access, err := s.openLocked(stored.accessToken)
	if err != nil {
		s.recordLocked(ctx, "get_token", "error", start)
		return nil, fmt.Errorf("memory: decrypt access token: %w", err)
	}
	refresh, err := s.openLocked(stored.refreshToken)
	if err != nil {
		s.recordLocked(ctx, "get_token", "error", start)
		return nil, fmt.Errorf("memory: decrypt refresh token: %w", err)
	}

	s.recordLocked(ctx, "get_token", "success", start)
	return &oauth2.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    stored.tokenType,
		Expiry:       stored.expiry,
	}, nil
}

// DeleteToken removes the token for a subject.
func (s *Store) DeleteToken(ctx context.Context, subject string) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, subject)
	s.recordLocked(ctx, "delete_token", "success", start)
	return nil
}

// Len returns the number of stored tokens.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

func (s *Store) sealLocked(value string) (string, error) {
	if s.encryptor == nil || value == "" {
		return value, nil
	}
	return s.encryptor.Encrypt(value)
}

func (s *Store) openLocked(value string) (string, error) {
	if s.encryptor == nil || value == "" {
		return value, nil
	}
	return s.encryptor.Decrypt(value)
}

func (s *Store) recordLocked(ctx context.Context, operation, result string, start time.Time) {
	if s.instrumentation == nil {
		return
	}
	s.instrumentation.Metrics().RecordStorageOperation(ctx, operation, result, float64(time.Since(start).Milliseconds()))
}

// cleanupLoop periodically removes expired tokens that carry no refresh
// token. Tokens with a refresh token are kept: the caller can still refresh
// them.
func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for subject, stored := range s.tokens {
		if stored.refreshToken != "" {
			continue
		}
		if security.IsTokenExpired(stored.expiry) {
			delete(s.tokens, subject)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("cleaned up expired tokens", "removed", removed, "remaining", len(s.tokens))
	}
}
