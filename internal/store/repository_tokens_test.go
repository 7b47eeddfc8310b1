package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_SaveAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(logger.Nop())

	ok, err := repo.TokenExists(ctx, "tok_alice")
	require.NoError(t, err)
	assert.False(t, ok, "fresh repository must be empty")

	require.NoError(t, repo.SaveToken(ctx, "tok_alice"))

	ok, err = repo.TokenExists(ctx, "tok_alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TokenExists(ctx, "tok_bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenRepository_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(logger.Nop()).(*tokenRepository)

	require.NoError(t, repo.SaveToken(ctx, "tok_alice"))
	require.NoError(t, repo.SaveToken(ctx, "tok_alice"))

	assert.Len(t, repo.tokens, 1)
}

func TestTokenRepository_EmptyToken(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(logger.Nop())

	assert.ErrorIs(t, repo.SaveToken(ctx, ""), ErrEmptyToken)

	ok, err := repo.TokenExists(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenRepository_IndependentInstances(t *testing.T) {
	ctx := context.Background()
	first := NewTokenRepository(logger.Nop())
	second := NewTokenRepository(logger.Nop())

	require.NoError(t, first.SaveToken(ctx, "tok_alice"))

	ok, err := second.TokenExists(ctx, "tok_alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestTokenRepository_Concurrent exercises concurrent writers and readers;
// run with -race to catch unsynchronised access.
func TestTokenRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(logger.Nop())

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.SaveToken(ctx, fmt.Sprintf("tok_%d", i%10)))
		}()
		go func() {
			defer wg.Done()
			_, err := repo.TokenExists(ctx, fmt.Sprintf("tok_%d", i%10))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		ok, err := repo.TokenExists(ctx, fmt.Sprintf("tok_%d", i))
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Len(t, repo.(*tokenRepository).tokens, 10)
}
