package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
)

// tokenRepository is an in-memory, mutex-guarded [TokenRepository].
// Tokens are only ever added; the set lives as long as the value does.
type tokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]struct{}

	logger *logger.Logger
}

// NewTokenRepository returns an empty token set.
func NewTokenRepository(logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		tokens: make(map[string]struct{}),
		logger: logger,
	}
}

// SaveToken implements [TokenRepository].
func (r *tokenRepository) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	r.mu.Lock()
	_, existed := r.tokens[token]
	r.tokens[token] = struct{}{}
	size := len(r.tokens)
	r.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Bool("already_issued", existed).
		Int("issued_tokens", size).
		Msg("token saved")

	return nil
}

// TokenExists implements [TokenRepository].
func (r *tokenRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tokens[token]
	return ok, nil
}
